// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	deliverycontext "notekeeper/internal/delivery/context"
	"notekeeper/internal/delivery/http/response"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgRegistered     = "Thank you very much for registering! Please proceed to log in."
	msgLoggedIn       = "You are logged in!"
	msgAccountDeleted = "User deleted successfully"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles POST /register. No token is issued; the client logs in afterwards.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Fullname: req.Fullname,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgRegistered)
}

// Login handles POST /login.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.LoginResponse{
		Message: msgLoggedIn,
		Token:   output.Token,
	})
}

// GetUserData handles POST /getUserData for the authenticated caller.
func (h *AccountHandler) GetUserData(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetUserData(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	notes := make([]response.NoteView, 0, len(output.Notes))
	for _, note := range output.Notes {
		notes = append(notes, response.NoteView{
			ID:          note.ID,
			NoteTitle:   note.Title,
			NoteContent: note.Content,
		})
	}

	return response.OK(c, response.UserDataResponse{
		Username:     output.Username,
		ExistedNotes: notes,
	})
}

// DeleteUser handles DELETE /deleteUser. The caller's notes go with the account.
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), identity); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgAccountDeleted)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// callerIdentity returns the identity bound by the auth middleware. A route
// mounted without it yields ErrAuthMissing.
func callerIdentity(c echo.Context) (entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrAuthMissing
	}

	return identity, nil
}
