package middleware

import (
	"log/slog"

	deliverycontext "farmgate/internal/delivery/context"
	"farmgate/internal/delivery/http/session"
	domainerrors "farmgate/internal/domain/errors"
	"farmgate/internal/domain/service"
	"farmgate/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the session gate: it resolves the session cookie to
// verified claims or rejects the request before any protected handler
// runs. It holds no state of its own, so verifying the same token twice
// yields the same outcome until the token expires.
type AuthMiddleware struct {
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate validates the session token carried by the request cookie.
// A missing cookie and an invalid token are distinct outcomes (both 401),
// matching the boundary contract.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := session.Token(c)
		if token == "" {
			m.logger.Warn("unauthorized access attempt",
				slog.String("path", c.Request().URL.Path),
			)

			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warn("invalid session token used",
				slog.String("path", c.Request().URL.Path),
			)

			return errors.WithStack(err)
		}

		// Expose the verified identity to handlers and use cases.
		c.Set(string(deliverycontext.KeySession), claims)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithSession(c.Request().Context(), claims),
		))

		return next(c)
	}
}

// SessionClaims returns the claims the gate attached to the echo context,
// or nil on an ungated route.
func SessionClaims(c echo.Context) *service.SessionClaims {
	if claims, ok := c.Get(string(deliverycontext.KeySession)).(*service.SessionClaims); ok {
		return claims
	}

	return nil
}
