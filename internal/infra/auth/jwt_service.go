// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"farmgate/config"
	"farmgate/internal/domain/entity"
	domainerrors "farmgate/internal/domain/errors"
	"farmgate/internal/domain/service"
	"farmgate/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is injected through the config object; there is no
// package-level secret, so rotating the config invalidates all
// outstanding tokens at the next restart.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.SecretKey == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.SecretKey),
		ttl:    cfg.Auth.SessionTTL,
	}, nil
}

// Issue creates a signed HS256 token asserting email and role, valid for
// the configured window from now.
func (s *jwtService) Issue(email string, role entity.Role) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// Verify validates the token's signature and expiry and decodes its claims.
// Every failure mode collapses into the domain's invalid-token error; the
// underlying parse error is attached as detail for logging only.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("verify session token")
	}

	return claims, nil
}

// TTL returns the validity window tokens are issued with.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
