package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenTypeAccess is the only token type issued by the service.
const TokenTypeAccess = "access"

// AccessToken is a signed bearer token together with its absolute expiry.
// It has no server-side state.
type AccessToken struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// TokenClaims are the verified claims carried by an access token.
type TokenClaims struct {
	Subject   uuid.UUID
	Type      string
	ExpiresAt time.Time
}
