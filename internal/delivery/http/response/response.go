// Package response defines the JSON bodies written by the HTTP handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"` // User-friendly message
	Code    string `json:"code"`    // Machine-readable error kind, e.g. "NOTE_NOT_EXISTS"
}

// LoginResponse is returned by /login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AddNoteResponse is returned by /addNote.
type AddNoteResponse struct {
	AddedNoteID int64 `json:"addedNoteId"`
}

// EditNoteResponse is returned by /editNote.
type EditNoteResponse struct {
	Message       string `json:"message"`
	UpdatedNoteID int64  `json:"updatedNoteId"`
}

// NoteView is one entry of existedNotes.
type NoteView struct {
	ID          int64  `json:"id"`
	NoteTitle   string `json:"note_title"`
	NoteContent string `json:"note_content"`
}

// UserDataResponse is returned by /getUserData.
type UserDataResponse struct {
	Username     string     `json:"username"`
	ExistedNotes []NoteView `json:"existedNotes"`
}

// OK writes a 200 JSON body.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Message writes a 200 {message} body.
func Message(c echo.Context, message string) error {
	return OK(c, MessageResponse{Message: message})
}

// Error writes an error body with the given status.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    errorCode,
	})
}
