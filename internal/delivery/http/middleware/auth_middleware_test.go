package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmgate/config"
	"farmgate/internal/delivery/http/session"
	"farmgate/internal/domain/entity"
	domainerrors "farmgate/internal/domain/errors"
	"farmgate/internal/domain/service"
	"farmgate/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) (*AuthMiddleware, service.TokenService) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.SessionTTL = time.Hour

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokens, logger), tokens
}

func gateContext(cookie string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	gate, _ := newTestGate(t)
	next := func(c echo.Context) error { return nil }

	err := gate.Authenticate(next)(gateContext(""))

	assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	gate, _ := newTestGate(t)
	next := func(c echo.Context) error { return nil }

	err := gate.Authenticate(next)(gateContext("tampered.token.value"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_ValidTokenAttachesClaims(t *testing.T) {
	gate, tokens := newTestGate(t)
	token, err := tokens.Issue("f1@t.com", entity.RoleFarmer)
	require.NoError(t, err)

	var seen *service.SessionClaims
	next := func(c echo.Context) error {
		seen = SessionClaims(c)

		return nil
	}

	c := gateContext(token)
	require.NoError(t, gate.Authenticate(next)(c))

	require.NotNil(t, seen)
	assert.Equal(t, "f1@t.com", seen.Email)
	assert.Equal(t, entity.RoleFarmer, seen.Role)
}

func TestAuthMiddleware_VerifyIsIdempotent(t *testing.T) {
	gate, tokens := newTestGate(t)
	token, err := tokens.Issue("f1@t.com", entity.RoleFarmer)
	require.NoError(t, err)
	next := func(c echo.Context) error { return nil }

	// Same token, same outcome, as many times as it is presented.
	for range 3 {
		assert.NoError(t, gate.Authenticate(next)(gateContext(token)))
	}
}
