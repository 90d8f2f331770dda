// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"farmgate/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SignupOutput returns the new account's public claims, its session
// token, and the public projection of the full account set.
type SignupOutput struct {
	Email    string
	Role     entity.Role
	Token    string
	AllUsers []entity.AccountView
}

// LoginOutput returns the account's public claims and a fresh session token.
type LoginOutput struct {
	Email     string
	Role      entity.Role
	CreatedAt int
	Token     string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Logout is absent on purpose: discarding a session is a pure cookie
// operation with no server-side state to touch.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Profile resolves a gate-verified email back to the stored account,
	// minus the password hash.
	Profile(ctx context.Context, email string) (*entity.AccountView, error)
}
