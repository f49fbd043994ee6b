// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Process-wide signing secret, loaded once at startup.
	sessionTTL time.Duration // Session token lifetime.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// Issue creates a signed session token bound to the account id and email.
func (s *jwtService) Issue(accountID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify validates a session token string and extracts its claims.
// An expired token and a tampered token fail with distinct domain errors;
// neither reveals anything beyond the category of failure.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrSessionTokenExpired.WrapMessage("session token past its expiry")
		}

		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage("failed to parse session token")
	}
	if !token.Valid {
		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage("session token rejected")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage("malformed subject claim")
	}
	claims.AccountID = accountID

	return claims, nil
}
