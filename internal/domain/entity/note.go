package entity

import "time"

// Note is a piece of text owned by exactly one user.
type Note struct {
	ID        int64
	OwnerID   int64 // References User.ID.
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
