package service

import (
	"time"

	"qkart/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService issues and verifies stateless access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue mints an access token for userID that expires ttl from now.
	Issue(userID uuid.UUID, ttl time.Duration) (*entity.AccessToken, error)

	// Verify checks the signature first and the expiry second, returning
	// domainerrors.ErrTokenInvalid or domainerrors.ErrTokenExpired respectively.
	Verify(tokenString string) (*entity.TokenClaims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
