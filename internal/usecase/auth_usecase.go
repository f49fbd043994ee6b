// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// All three fields are required; an empty value fails validation.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput carries a session token together with the public view of the
// account it is bound to. Registration and login share the shape; neither
// ever exposes the stored record.
type AuthOutput struct {
	Token   string
	Account *entity.PublicAccount
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and issues its first session token.
	// Fails with ErrMissingFields on empty input and ErrAccountExists on a
	// duplicate email, however the duplicate is detected.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh session token.
	// Unknown email and wrong password fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
