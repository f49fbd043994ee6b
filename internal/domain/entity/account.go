// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the durable identity record of a registered customer.
// Email is the natural lookup key and is unique across all accounts;
// PasswordHash is the bcrypt digest of the login password and must never
// leave the service boundary.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account, generated by the store on creation.
	Email        string    // The login email, stored exactly as submitted (no normalization).
	Name         string    // The customer's display name.
	Image        string    // Avatar URL placeholder, kept for client compatibility; empty on registration.
	PasswordHash string    // bcrypt digest of the password. Internal only.
	CreatedAt    time.Time // Timestamp of when this account was created. Immutable.
}

// Public returns the outward-facing projection of the account.
// Every response boundary must go through this; the storage record itself
// is never serialized.
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Image:     a.Image,
		CreatedAt: a.CreatedAt,
	}
}

// PublicAccount is the strict public view of an Account. It deliberately has
// no field for the password hash, so a leak cannot happen by serialization.
type PublicAccount struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
