package usecase

import (
	"context"

	"notekeeper/internal/domain/entity"
)

// NoteInput carries the editable fields of a note.
type NoteInput struct {
	Title   string
	Content string
}

// NoteUsecase defines note operations. Every call acts on behalf of the
// authenticated identity and only ever touches that identity's notes.
type NoteUsecase interface {
	// AddNote returns the ID of the created note.
	AddNote(ctx context.Context, identity entity.Identity, input *NoteInput) (int64, error)
	EditNote(ctx context.Context, identity entity.Identity, noteID int64, input *NoteInput) error
	DeleteNote(ctx context.Context, identity entity.Identity, noteID int64) error
}
