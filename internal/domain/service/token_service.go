package service

import (
	"time"

	"farmgate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the identity a session token asserts.
type SessionClaims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token asserting email and role.
	Issue(email string, role entity.Role) (string, error)

	// Verify validates signature and expiry of a token string and decodes
	// its claims. Any malformed, tampered or expired token fails with the
	// domain's invalid-token error; the empty string is the caller's
	// concern (missing token, detected before Verify is reached).
	Verify(tokenString string) (*SessionClaims, error)

	// TTL returns the validity window tokens are issued with. The session
	// cookie Max-Age mirrors it.
	TTL() time.Duration
}
