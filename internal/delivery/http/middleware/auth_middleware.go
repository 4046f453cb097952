// Package middleware holds the HTTP-specific middleware: bearer authentication
// and the echo error handler.
package middleware

import (
	"strings"

	deliverycontext "qkart/internal/delivery/context"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying an access token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate verifies the bearer token and stores its subject on the context.
// Failures are returned to the error handler, which keeps expired and invalid
// tokens distinguishable by error code.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must use the Bearer scheme")
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		claims, err := m.authUC.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, claims.Subject)

		return next(c)
	}
}
