// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "notekeeper/internal/delivery/context"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/domain/service"
	"notekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	noteRepo     repository.NoteRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	NoteRepo     repository.NoteRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		noteRepo:     params.NoteRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with a bcrypt-hashed password. No token is issued.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, domainerrors.ErrDuplicateUsername
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to look up username", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err, "Error executing sql query")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		Fullname:     input.Fullname,
	}
	// A concurrent registration that won the race is reported by the unique index.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUsername) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err, "Error executing registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the password and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to look up user for login", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err, "Error executing query")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrIncorrectPassword
	}

	token, err := srv.tokenService.Issue(entity.Identity{ID: user.ID, Username: user.Username})
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// GetUserData returns the caller's username and notes.
func (srv *accountService) GetUserData(ctx context.Context, identity entity.Identity) (*usecase.UserDataOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotExists
		}

		return nil, domainerrors.NewPersistenceError(err, "Error executing query")
	}

	notes, err := srv.noteRepo.ListByOwner(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list notes", slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err, "Error executing query")
	}

	return &usecase.UserDataOutput{Username: user.Username, Notes: notes}, nil
}

// DeleteAccount removes the caller's notes and account in one transaction.
// Tokens already issued stay valid until expiry but no longer resolve to a user.
func (srv *accountService) DeleteAccount(ctx context.Context, identity entity.Identity) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NoteRepo().DeleteByOwner(ctx, identity.ID); err != nil {
			return err
		}

		return repoFactory.UserRepo().Delete(ctx, identity.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotExists
		}
		srv.log(ctx).Error("Failed to delete account", slog.Any("error", err))

		return domainerrors.NewPersistenceError(err, "Error deleting user")
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("userID", identity.ID))

	return nil
}
