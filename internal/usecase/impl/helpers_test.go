package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"qkart/config"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:            4,
			AccessTokenTTLMinutes: 240,
		},
		Account: &config.AccountConfig{
			DefaultWalletMoney: 500,
			DefaultAddress:     "ADDRESS_NOT_SET",
		},
	}
	cfg.SecretKey.Access = "impl_test_access_secret"

	return cfg
}

// memUserRepository enforces email uniqueness the way the unique index does.
type memUserRepository struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{
		byID:    map[uuid.UUID]*entity.User{},
		byEmail: map[string]uuid.UUID{},
	}
}

func (r *memUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	id, ok := r.byEmail[email]
	r.mu.Unlock()
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *memUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate key value violates unique constraint")
	}

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[user.Email] = user.ID

	return nil
}
