package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/service"
	"qkart/internal/errors"
	"qkart/internal/infra/validation"
	mockRepo "qkart/internal/mocks/repository"
	mockSvc "qkart/internal/mocks/service"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDummyHash = "$2a$04$dummy"

type authServiceFixtures struct {
	service   usecase.AuthUsecase
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
	publisher *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := newDiscardLogger()

	hasher.EXPECT().Hash(dummyPassword).Return(testDummyHash, nil).Once()

	directory := NewUserDirectory(UserDirectoryParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Config:   newTestConfig(),
		Logger:   logger,
	})

	svc, err := NewAuthService(AuthServiceParams{
		Directory: directory,
		Hasher:    hasher,
		Tokens:    tokens,
		Validator: validation.New(),
		Publisher: publisher,
		Logger:    logger,
	})
	require.NoError(t, err)

	return authServiceFixtures{
		service:   svc,
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@x.com", PasswordHash: "$2a$04$stored"}
	token := &entity.AccessToken{Token: "signed", Expires: time.Now().Add(4 * time.Hour)}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(user, nil)
	fx.hasher.EXPECT().Verify("pass123", user.PasswordHash).Return(true, nil)
	fx.tokens.EXPECT().AccessTokenTTL().Return(4 * time.Hour)
	fx.tokens.EXPECT().Issue(user.ID, 4*time.Hour).Return(token, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Alice@x.com", Password: "pass123"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, token, output.Tokens.Access)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@x.com", PasswordHash: "$2a$04$stored"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Verify("pass123", testDummyHash).Return(false, nil)

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(user, nil)
	fx.hasher.EXPECT().Verify("wrong123", user.PasswordHash).Return(false, nil)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@x.com", Password: "pass123"})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@x.com", Password: "wrong123"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(unknownErr, domainerrors.ErrUserNotFound))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	var appErr domainerrors.AppError
	require.True(t, errors.As(unknownErr, &appErr))
	assert.Equal(t, "Incorrect email or password", appErr.Message())
}

func TestAuthService_Login_UnknownEmailStillVerifies(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Verify("pass123", testDummyHash).Return(false, nil).Once()

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@x.com", Password: "pass123"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user by email")
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@x.com", Password: "pass123"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@x.com", PasswordHash: "garbage"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(user, nil)
	fx.hasher.EXPECT().Verify("pass123", "garbage").Return(false, domainerrors.ErrPasswordHashFailed)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@x.com", Password: "pass123"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pass123").Return("$2a$04$hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.EXPECT().
		PublishUserRegistered(ctx, mock.MatchedBy(func(e *service.UserRegisteredEvent) bool {
			return e.Email == "alice@x.com" && e.UserID != ""
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "pass123",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", output.User.Email)
	assert.Equal(t, "$2a$04$hashed", output.User.PasswordHash)
}

func TestAuthService_Register_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pass123").Return("$2a$04$hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.EXPECT().
		PublishUserRegistered(ctx, mock.AnythingOfType("*service.UserRegisteredEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "pass123",
	})

	require.NoError(t, err)
	assert.NotNil(t, output.User)
}

func TestAuthService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{
			name:  "malformed email",
			input: usecase.RegisterInput{Name: "Alice", Email: "not-an-email", Password: "pass123"},
		},
		{
			name:  "password without digit",
			input: usecase.RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "password"},
		},
		{
			name:  "password without letter",
			input: usecase.RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "12345678"},
		},
		{
			name:  "missing name",
			input: usecase.RegisterInput{Email: "alice@x.com", Password: "pass123"},
		},
		{
			name:  "blank name",
			input: usecase.RegisterInput{Name: "   ", Email: "b@x.com", Password: "pass123"},
		},
		{
			name:  "multibyte password over bcrypt limit",
			input: usecase.RegisterInput{Name: "Alice", Email: "alice@x.com", Password: strings.Repeat("é", 40) + "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			output, err := fx.service.Register(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(&entity.User{ID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@X.com",
		Password: "pass123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_VerifyToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &entity.TokenClaims{Subject: uuid.New(), Type: entity.TokenTypeAccess}
	fx.tokens.EXPECT().Verify("good").Return(claims, nil)
	fx.tokens.EXPECT().Verify("old").Return(nil, domainerrors.ErrTokenExpired)

	got, err := fx.service.VerifyToken(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, claims, got)

	_, err = fx.service.VerifyToken(ctx, "old")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAuthService_GetUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	known := &entity.User{ID: uuid.New()}
	missing := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	fx.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, domainerrors.ErrUserNotFound)

	got, err := fx.service.GetUser(ctx, known.ID)
	require.NoError(t, err)
	assert.Equal(t, known, got)

	_, err = fx.service.GetUser(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestNewAuthService_DummyHashFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(dummyPassword).Return("", domainerrors.ErrPasswordHashFailed)

	svc, err := NewAuthService(AuthServiceParams{Hasher: hasher, Logger: newDiscardLogger()})

	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}
