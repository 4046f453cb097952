package usecase

import (
	"context"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput carries the plaintext credentials for a new account.
// The password is hashed by the directory before anything is persisted.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserDirectory resolves and creates user records and owns email uniqueness.
// Lookups that miss return domainerrors.ErrUserNotFound; a taken email returns
// domainerrors.ErrUserAlreadyExists whether the pre-check or the store caught it.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, input CreateUserInput) (*entity.User, error)
}
