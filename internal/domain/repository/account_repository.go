// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches the lookup key.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned when an insert violates the email uniqueness
// constraint. The constraint lives in the store, not the application: two
// concurrent registrations of the same email must not both succeed even if
// both passed an existence pre-check.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never on the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email, compared exactly as stored.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The store generates the ID and creation
	// timestamp and writes them back onto the entity. Returns ErrDuplicateEmail
	// when the email is already taken.
	Create(ctx context.Context, account *entity.Account) error
}
