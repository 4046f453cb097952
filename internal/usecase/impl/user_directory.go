// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"qkart/config"
	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/domain/service"
	"qkart/internal/errors"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userDirectory implements the UserDirectory interface.
type userDirectory struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	defaultWallet  float64
	defaultAddress string
	newID          func() (uuid.UUID, error)
	logger         *slog.Logger
}

// UserDirectoryParams holds dependencies for the user directory, injected by Fx.
type UserDirectoryParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserDirectory is the constructor for userDirectory.
func NewUserDirectory(params UserDirectoryParams) usecase.UserDirectory {
	dir := &userDirectory{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		newID:    uuid.NewV7,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Account != nil {
		dir.defaultWallet = params.Config.Account.DefaultWalletMoney
		dir.defaultAddress = params.Config.Account.DefaultAddress
	}

	return dir
}

func (d *userDirectory) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// FindByEmail looks the user up by the normalized email.
func (d *userDirectory) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := d.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// FindByID looks the user up by identifier.
func (d *userDirectory) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := d.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// Create pre-checks the email, hashes the password and persists the record.
// The pre-check is only a fast path; the store's unique index decides races
// and reports them with the same ErrUserAlreadyExists.
func (d *userDirectory) Create(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name: must not be blank")
	}
	email := entity.NormalizeEmail(input.Email)

	_, err := d.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		d.log(ctx).Info("Registration rejected, email already taken")

		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := d.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	id, err := d.newID()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails("user id generation failed"), err.Error())
	}

	user := &entity.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		WalletMoney:  d.defaultWallet,
		Address:      d.defaultAddress,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			d.log(ctx).Warn("Concurrent registration lost the unique email race", slog.String("userID", id.String()))

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	d.log(ctx).Debug("User created", slog.String("userID", user.ID.String()))

	return user, nil
}
