package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of a session token. The token is stateless:
// the server keeps no session record, everything needed to identify the
// caller travels inside the signed token.
type SessionClaims struct {
	AccountID uuid.UUID `json:"-"`
	Email     string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
type TokenService interface {
	// Issue produces a signed, self-contained session token binding the
	// account id and email, valid for the configured session lifetime.
	Issue(accountID uuid.UUID, email string) (string, error)

	// Verify validates a token string and returns its claims. Expired tokens
	// and tokens with a bad signature fail with distinct domain errors.
	Verify(token string) (*SessionClaims, error)
}
