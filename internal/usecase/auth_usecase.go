// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72,password"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// AuthTokens groups the tokens handed out on login.
type AuthTokens struct {
	Access *entity.AccessToken `json:"access"`
}

// LoginOutput returns the authenticated user and their access token.
type LoginOutput struct {
	User   *entity.User
	Tokens AuthTokens
}

// AuthUsecase defines the authentication operations consumed by the delivery layer.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	VerifyToken(ctx context.Context, token string) (*entity.TokenClaims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
