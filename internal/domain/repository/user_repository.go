// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository is the user-record store consumed by the account use cases.
// Implementations must be safe for concurrent use and must enforce uniqueness
// of the normalized email; a violation is reported as
// domainerrors.ErrUserAlreadyExists.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	// It returns domainerrors.ErrUserNotFound when no record exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by exact equality on the normalized email.
	// It returns domainerrors.ErrUserNotFound when no record exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated timestamps.
	Create(ctx context.Context, user *entity.User) error
}
