package model

import "time"

// NoteModel mirrors the 'users_notes' table. UserID references users.id.
type NoteModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	UserID      int64      `gorm:"not null;index"`
	User        *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	NoteTitle   string     `gorm:"type:text"`
	NoteContent string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "users_notes"
}

// All lists every model in dependency order for schema bootstrap.
func All() []any {
	return []any{&UserModel{}, &NoteModel{}}
}
