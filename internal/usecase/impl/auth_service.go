package impl

import (
	"context"
	"log/slog"

	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/service"
	"qkart/internal/errors"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dummyPassword seeds the hash verified when the email is unknown, so a miss
// costs one bcrypt comparison just like a wrong password.
const dummyPassword = "no-such-account-0"

// authService implements the AuthUsecase interface.
type authService struct {
	directory usecase.UserDirectory
	hasher    service.PasswordHasher
	tokens    service.TokenService
	validator service.InputValidator
	publisher service.EventPublisher
	dummyHash string
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Directory usecase.UserDirectory
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
	Validator service.InputValidator
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
// The dummy hash is produced with the configured hasher so its cost matches real records.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	dummyHash, err := params.Hasher.Hash(dummyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy password hash")
	}

	return &authService{
		directory: params.Directory,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		validator: params.Validator,
		publisher: params.Publisher,
		dummyHash: dummyHash,
		logger:    params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input at the boundary and delegates creation to the directory.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	user, err := srv.directory.Create(ctx, usecase.CreateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))
	srv.publishRegistered(ctx, user)

	return &usecase.RegisterOutput{User: user}, nil
}

// publishRegistered is best effort; the account already exists at this point.
func (srv *authService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.UserRegisteredEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID.String(),
		Email:     user.Email,
	}
	if err := srv.publisher.PublishUserRegistered(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish user registered event",
			slog.String("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}

// Login verifies the credentials and issues an access token.
// An unknown email and a wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, lookupErr := srv.directory.FindByEmail(ctx, input.Email)

	targetHash := srv.dummyHash
	userExists := false
	switch {
	case lookupErr == nil:
		targetHash = user.PasswordHash
		userExists = true
	case !errors.Is(lookupErr, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(lookupErr, "failed to look up user for login")
	}

	valid, verifyErr := srv.hasher.Verify(input.Password, targetHash)
	if verifyErr != nil {
		if !userExists {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		srv.log(ctx).Error("Stored password hash is unreadable", slog.String("userID", user.ID.String()))

		return nil, errors.Wrap(verifyErr, "failed to verify password")
	}

	if !userExists || !valid {
		srv.log(ctx).Info("Login rejected")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokens.Issue(user.ID, srv.tokens.AccessTokenTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		User:   user,
		Tokens: usecase.AuthTokens{Access: token},
	}, nil
}

// VerifyToken checks an access token presented by a client.
func (srv *authService) VerifyToken(ctx context.Context, token string) (*entity.TokenClaims, error) {
	claims, err := srv.tokens.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, err
	}

	return claims, nil
}

// GetUser returns the record behind an authenticated subject.
func (srv *authService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.directory.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}
