package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	mockRepo "notekeeper/internal/mocks/repository"
	mockSvc "notekeeper/internal/mocks/service"
	"notekeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	noteRepo     *mockRepo.MockNoteRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		noteRepo:     mockRepo.NewMockNoteRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAccountService(AccountServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		NoteRepo:     fx.noteRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       discardLogger(),
	})

	return fx
}

func assertAppError(t *testing.T, err error, code string, status int) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
	assert.Equal(t, status, appErr.HTTPCode())
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Password: "abc", Fullname: "Alice A"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("abc").Return("$2a$10$hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "Alice A", output.User.Fullname)
	assert.Equal(t, "$2a$10$hashed", output.User.PasswordHash)
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{ID: 1, Username: "alice"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "abc"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestAccountService_Register_DuplicateRaceOnInsert(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("abc").Return("hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrDuplicateUsername.WrapMessage("username already exists"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "abc"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
	assertAppError(t, err, "DUPLICATE_USERNAME", 400)
}

func TestAccountService_Register_LookupFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, errors.New("db down"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "abc"})
	assertAppError(t, err, "PERSISTENCE_ERROR", 400)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("abc").Return("", errors.New("password too long"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "abc"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Register_CreateFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("abc").Return("hash", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(errors.New("disk full"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "abc"})
	assertAppError(t, err, "PERSISTENCE_ERROR", 400)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Error executing registration", appErr.Message())
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := &entity.User{ID: 7, Username: "alice", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("abc", "hash").Return(true)
	fx.tokenService.EXPECT().Issue(entity.Identity{ID: 7, Username: "alice"}).Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_Failures(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(fx accountServiceFixtures)
		wantCode   string
		wantStatus int
	}{
		{
			name: "unknown user",
			setup: func(fx accountServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
			},
			wantCode:   "USER_NOT_FOUND",
			wantStatus: 404,
		},
		{
			name: "wrong password",
			setup: func(fx accountServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(&entity.User{ID: 7, Username: "alice", PasswordHash: "hash"}, nil)
				fx.hasher.EXPECT().Check("abc", "hash").Return(false)
			},
			wantCode:   "INCORRECT_PASSWORD",
			wantStatus: 401,
		},
		{
			name: "storage failure",
			setup: func(fx accountServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, errors.New("timeout"))
			},
			wantCode:   "PERSISTENCE_ERROR",
			wantStatus: 400,
		},
		{
			name: "token signing failure",
			setup: func(fx accountServiceFixtures) {
				fx.userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(&entity.User{ID: 7, Username: "alice", PasswordHash: "hash"}, nil)
				fx.hasher.EXPECT().Check("abc", "hash").Return(true)
				fx.tokenService.EXPECT().Issue(mock.Anything).Return("", errors.New("sign failed"))
			},
			wantCode:   "TOKEN_ISSUE_FAILED",
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			tt.setup(fx)

			output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "abc"})
			assert.Nil(t, output)
			assertAppError(t, err, tt.wantCode, tt.wantStatus)
		})
	}
}

func TestAccountService_GetUserData(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	notes := []*entity.Note{
		{ID: 1, OwnerID: 7, Title: "a", Content: "x"},
		{ID: 2, OwnerID: 7, Title: "b", Content: "y"},
	}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "alice"}, nil)
	fx.noteRepo.EXPECT().ListByOwner(ctx, int64(7)).Return(notes, nil)

	output, err := fx.service.GetUserData(ctx, entity.Identity{ID: 7, Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
	assert.Equal(t, notes, output.Notes)
}

func TestAccountService_GetUserData_UserGone(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUserData(ctx, entity.Identity{ID: 7, Username: "alice"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotExists)
}

func TestAccountService_GetUserData_ListFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, Username: "alice"}, nil)
	fx.noteRepo.EXPECT().ListByOwner(ctx, int64(7)).Return(nil, errors.New("db down"))

	_, err := fx.service.GetUserData(ctx, entity.Identity{ID: 7})
	assertAppError(t, err, "PERSISTENCE_ERROR", 400)
}

func expectTransaction(t *testing.T, fx accountServiceFixtures, setup func(users *mockRepo.MockUserRepository, notes *mockRepo.MockNoteRepository)) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUsers := mockRepo.NewMockUserRepository(t)
			txNotes := mockRepo.NewMockNoteRepository(t)

			factory.EXPECT().UserRepo().Return(txUsers).Maybe()
			factory.EXPECT().NoteRepo().Return(txNotes).Maybe()
			setup(txUsers, txNotes)

			return fn(factory)
		})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTransaction(t, fx, func(users *mockRepo.MockUserRepository, notes *mockRepo.MockNoteRepository) {
		notes.EXPECT().DeleteByOwner(ctx, int64(7)).Return(nil)
		users.EXPECT().Delete(ctx, int64(7)).Return(nil)
	})

	require.NoError(t, fx.service.DeleteAccount(ctx, entity.Identity{ID: 7, Username: "alice"}))
}

func TestAccountService_DeleteAccount_NotesFailureSkipsUserDelete(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTransaction(t, fx, func(_ *mockRepo.MockUserRepository, notes *mockRepo.MockNoteRepository) {
		notes.EXPECT().DeleteByOwner(ctx, int64(7)).Return(errors.New("lock timeout"))
	})

	err := fx.service.DeleteAccount(ctx, entity.Identity{ID: 7})
	assertAppError(t, err, "PERSISTENCE_ERROR", 400)
}

func TestAccountService_DeleteAccount_AlreadyGone(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTransaction(t, fx, func(users *mockRepo.MockUserRepository, notes *mockRepo.MockNoteRepository) {
		notes.EXPECT().DeleteByOwner(ctx, int64(7)).Return(nil)
		users.EXPECT().Delete(ctx, int64(7)).Return(repository.ErrUserNotFound)
	})

	err := fx.service.DeleteAccount(ctx, entity.Identity{ID: 7})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotExists)
}
