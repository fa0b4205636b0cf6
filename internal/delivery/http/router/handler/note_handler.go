package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"

	deliverycontext "notekeeper/internal/delivery/context"
	"notekeeper/internal/delivery/http/response"
	"notekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgNoteUpdated = "Note updated successfully"
	msgNoteDeleted = "Note deleted successfully"
)

// noteID accepts both 12 and "12" on the wire.
type noteID int64

var _ json.Unmarshaler = (*noteID)(nil)

func (id *noteID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0

		return nil
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.Wrap(err, "note id must be an integer")
	}
	*id = noteID(v)

	return nil
}

type noteBody struct {
	Title   string `json:"note_title"`
	Content string `json:"note_content"`
}

func (b *noteBody) input() *usecase.NoteInput {
	return &usecase.NoteInput{Title: b.Title, Content: b.Content}
}

type addNoteRequest struct {
	Note *noteBody `json:"note" validate:"required"`
}

type editNoteRequest struct {
	Note   *noteBody `json:"note" validate:"required"`
	NoteID noteID    `json:"noteId" validate:"required"`
}

type deleteNoteRequest struct {
	NoteIDToDelete noteID `json:"noteIdToDelete" validate:"required"`
}

// NoteHandler holds dependencies for note handlers. Every route it serves is
// behind the auth middleware.
type NoteHandler struct {
	uc     usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddNote handles POST /addNote.
func (h *NoteHandler) AddNote(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req addNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.uc.AddNote(c.Request().Context(), identity, req.Note.input())
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Note added", slog.Int64("note_id", id))

	return response.OK(c, response.AddNoteResponse{AddedNoteID: id})
}

// EditNote handles POST /editNote.
func (h *NoteHandler) EditNote(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req editNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.EditNote(c.Request().Context(), identity, int64(req.NoteID), req.Note.input()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.EditNoteResponse{
		Message:       msgNoteUpdated,
		UpdatedNoteID: int64(req.NoteID),
	})
}

// DeleteNote handles DELETE /deleteNote.
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req deleteNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.DeleteNote(c.Request().Context(), identity, int64(req.NoteIDToDelete)); err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Note deleted", slog.Int64("note_id", int64(req.NoteIDToDelete)))

	return response.Message(c, msgNoteDeleted)
}
