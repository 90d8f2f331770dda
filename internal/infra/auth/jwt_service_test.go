package auth

import (
	"strings"
	"testing"
	"time"

	"farmgate/config"
	"farmgate/internal/domain/entity"
	domainerrors "farmgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = secret
	cfg.Auth.SessionTTL = ttl

	return cfg
}

func TestJWTService_IssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("f1@t.com", entity.RoleFarmer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, "f1@t.com", claims.Email)
	assert.Equal(t, entity.RoleFarmer, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("f1@t.com", entity.RoleFarmer)
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_VerifyTamperedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("f1@t.com", entity.RoleFarmer)
	require.NoError(t, err)

	// Flip part of the signature.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = svc.Verify(tampered)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testTokenConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(testTokenConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue("f1@t.com", entity.RoleFarmer)
	require.NoError(t, err)

	_, err = verifier.Verify(token)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_VerifyMalformedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify("definitely.not.a-jwt")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testTokenConfig("", time.Hour))

	assert.Error(t, err)
}

func TestJWTService_TTL(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig("test-secret", 30*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, svc.TTL())
}
