package auth

import (
	"time"

	"qkart/config"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/service"
	"qkart/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessClaims is the exact token payload: sub, type and exp (epoch seconds).
// RegisteredClaims fields are omitempty, so nothing else is serialized.
type accessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// invalidTokenDetails is the only detail a client sees for a rejected token.
// The parser's reason stays in the wrapped message for the logs.
const invalidTokenDetails = "token could not be verified"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret    []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.AccessTokenTTL()
	}
	if ttl <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return newJWTService([]byte(cfg.SecretKey.Access), ttl, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret:    secret,
		method:    jwt.SigningMethodHS256,
		accessTTL: ttl,
		now:       now,
	}
}

// Issue builds {sub, type: "access", exp: now+ttl} and signs it with the shared secret.
// The expiry is computed once here and returned alongside the token.
func (s *jwtService) Issue(userID uuid.UUID, ttl time.Duration) (*entity.AccessToken, error) {
	expires := s.now().Add(ttl).Truncate(time.Second)

	claims := accessClaims{
		Type: entity.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInternalError.WithDetails("access token signing failed"), "sign access token: %v", err)
	}

	return &entity.AccessToken{Token: signed, Expires: expires.UTC()}, nil
}

// Verify checks the signature before the claims, so a tampered token is always
// reported as invalid even when its exp is in the past.
func (s *jwtService) Verify(tokenString string) (*entity.TokenClaims, error) {
	claims := &accessClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, "verify access token")
		}

		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid.WithDetails(invalidTokenDetails), "verify access token: %v", err)
	}

	if claims.Type != entity.TokenTypeAccess {
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid.WithDetails(invalidTokenDetails), "verify access token: unexpected type %q", claims.Type)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid.WithDetails(invalidTokenDetails), "verify access token: malformed subject: %v", err)
	}

	return &entity.TokenClaims{
		Subject:   subject,
		Type:      claims.Type,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
