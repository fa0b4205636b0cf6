package impl

import (
	"context"
	"log/slog"

	deliverycontext "notekeeper/internal/delivery/context"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	NoteRepo repository.NoteRepository
	Logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		userRepo: params.UserRepo,
		noteRepo: params.NoteRepo,
		logger:   params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddNote stores a note for the caller, who must still have an account.
func (srv *noteService) AddNote(ctx context.Context, identity entity.Identity, input *usecase.NoteInput) (int64, error) {
	if _, err := srv.userRepo.FindByID(ctx, identity.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrUserNotExists
		}

		return 0, domainerrors.NewPersistenceError(err, "Error adding note in database")
	}

	note := &entity.Note{
		OwnerID: identity.ID,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := srv.noteRepo.Create(ctx, note); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrUserNotExists
		}
		srv.log(ctx).Error("Failed to add note", slog.Any("error", err))

		return 0, domainerrors.NewPersistenceError(err, "Error adding note in database")
	}

	srv.log(ctx).Debug("Note added", slog.Int64("noteID", note.ID))

	return note.ID, nil
}

// EditNote overwrites a note the caller owns.
func (srv *noteService) EditNote(ctx context.Context, identity entity.Identity, noteID int64, input *usecase.NoteInput) error {
	note := &entity.Note{
		ID:      noteID,
		OwnerID: identity.ID,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := srv.noteRepo.Update(ctx, note); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrNoteNotExists
		}
		srv.log(ctx).Error("Failed to update note", slog.Int64("noteID", noteID), slog.Any("error", err))

		return domainerrors.NewPersistenceError(err, "Error updating note in database")
	}

	return nil
}

// DeleteNote removes a note the caller owns.
func (srv *noteService) DeleteNote(ctx context.Context, identity entity.Identity, noteID int64) error {
	if err := srv.noteRepo.Delete(ctx, identity.ID, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrNoteNotExists
		}
		srv.log(ctx).Error("Failed to delete note", slog.Int64("noteID", noteID), slog.Any("error", err))

		return domainerrors.NewPersistenceError(err, "Error deleting note from database")
	}

	return nil
}
