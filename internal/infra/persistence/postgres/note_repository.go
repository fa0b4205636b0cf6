package postgres

import (
	"context"

	"notekeeper/internal/domain/entity"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository implements the domain.NoteRepository interface using GORM.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts a note and fills in the generated ID and timestamps.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		// The owner vanished between the existence check and the insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// Update overwrites title and content of a note owned by note.OwnerID.
func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	// A map keeps empty strings in the SET clause.
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ? AND user_id = ?", note.ID, note.OwnerID).
		Updates(map[string]any{
			"note_title":   note.Title,
			"note_content": note.Content,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note owned by ownerID.
func (repo *noteRepository) Delete(ctx context.Context, ownerID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// ListByOwner returns every note of a user ordered by id.
func (repo *noteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Note, error) {
	var notesM []*model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id").
		Find(&notesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(notesM))
	for _, noteM := range notesM {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, nil
}

// DeleteByOwner removes all notes of a user. Having no notes is not an error.
func (repo *noteRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Delete(&model.NoteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete notes of user")
	}

	return nil
}

func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:        data.ID,
		OwnerID:   data.UserID,
		Title:     data.NoteTitle,
		Content:   data.NoteContent,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:          data.ID,
		UserID:      data.OwnerID,
		NoteTitle:   data.Title,
		NoteContent: data.Content,
	}
}
