package repository

import (
	"context"
	"errors"

	"notekeeper/internal/domain/entity"
)

// ErrNoteNotFound is returned when no note matches both the id and the owner.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines persistence operations for notes.
// Every mutation is scoped by owner so one user cannot touch another user's notes.
type NoteRepository interface {
	// Create persists a new note and fills in its generated ID.
	Create(ctx context.Context, note *entity.Note) error

	// Update overwrites title and content of the note matching note.ID and note.OwnerID.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes the note with the given id owned by ownerID.
	Delete(ctx context.Context, ownerID, id int64) error

	// ListByOwner returns all notes of a user ordered by id.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Note, error)

	// DeleteByOwner removes every note of a user.
	DeleteByOwner(ctx context.Context, ownerID int64) error
}
