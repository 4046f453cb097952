package impl

import (
	"context"
	"testing"

	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/errors"
	mockRepo "qkart/internal/mocks/repository"
	mockSvc "qkart/internal/mocks/service"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userDirectoryFixtures struct {
	directory usecase.UserDirectory
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserDirectory(t *testing.T) userDirectoryFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	directory := NewUserDirectory(UserDirectoryParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return userDirectoryFixtures{
		directory: directory,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestUserDirectory_FindByEmail_Normalizes(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()

	stored := &entity.User{ID: uuid.New(), Email: "alice@x.com"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(stored, nil)

	user, err := fx.directory.FindByEmail(ctx, "  Alice@X.COM ")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestUserDirectory_FindByEmail_NotFound(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ser@x.co").Return(nil, domainerrors.ErrUserNotFound)

	user, err := fx.directory.FindByEmail(ctx, "ser@x.co")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserDirectory_FindByID_NotFound(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrUserNotFound)

	user, err := fx.directory.FindByID(ctx, id)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserDirectory_Create_Success(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pass123").Return("$2a$04$hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@x.com" &&
				u.Name == "Alice" &&
				u.PasswordHash == "$2a$04$hashed" &&
				u.WalletMoney == 500 &&
				u.Address == "ADDRESS_NOT_SET" &&
				u.ID.Version() == 7
		})).
		Return(nil)

	user, err := fx.directory.Create(ctx, usecase.CreateUserInput{
		Name:     " Alice ",
		Email:    "Alice@X.com",
		Password: "pass123",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.NotEqual(t, "pass123", user.PasswordHash)
}

func TestUserDirectory_Create_EmailTakenPreCheck(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(&entity.User{ID: uuid.New()}, nil)

	user, err := fx.directory.Create(ctx, usecase.CreateUserInput{
		Name:     "Alice",
		Email:    "ALICE@x.com",
		Password: "pass123",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserDirectory_Create_EmailTakenAtStore(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pass123").Return("$2a$04$hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("unique violation on users.email"))

	user, err := fx.directory.Create(ctx, usecase.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "pass123",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserDirectory_Create_HashFailure(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("").Return("", domainerrors.ErrPasswordHashFailed)

	user, err := fx.directory.Create(ctx, usecase.CreateUserInput{
		Name:  "Alice",
		Email: "alice@x.com",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserDirectory_Create_LookupFailure(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user by email")
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, dbErr)

	user, err := fx.directory.Create(ctx, usecase.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "pass123",
	})

	assert.Nil(t, user)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestUserDirectory_Create_BlankName(t *testing.T) {
	fx := createTestUserDirectory(t)

	user, err := fx.directory.Create(context.Background(), usecase.CreateUserInput{
		Name:     " \t ",
		Email:    "b@x.com",
		Password: "pass123",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserDirectory_Create_IDGenerationFailure(t *testing.T) {
	fx := createTestUserDirectory(t)
	ctx := context.Background()
	fx.directory.(*userDirectory).newID = func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("entropy source exhausted")
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pass123").Return("$2a$04$hash", nil)

	user, err := fx.directory.Create(ctx, usecase.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "pass123",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
