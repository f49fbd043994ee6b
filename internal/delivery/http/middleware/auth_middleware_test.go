package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestConfig(enforce bool) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{EnforceSession: enforce}

	return cfg
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig(true))

	accountID := uuid.New()
	tokenSvc.EXPECT().Verify("valid-token").Return(&service.SessionClaims{
		AccountID: accountID,
		Email:     "test@example.com",
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/favorite", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID uuid.UUID
	var seenEmail string
	next := func(c echo.Context) error {
		seenID = c.Get(KeyAccountID).(uuid.UUID)
		seenEmail = c.Get(KeyAccountEmail).(string)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, seenID)
	assert.Equal(t, "test@example.com", seenEmail)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig(true))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/favorite", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_BadToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig(true))

	tokenSvc.EXPECT().Verify("bad-token").Return(nil, errors.New("signature mismatch"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/favorite", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Gate_OpenByDefault(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig(false))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/favorite", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// No Authorization header and no enforcement: the request passes.
	require.NoError(t, m.Gate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Gate_EnforcedRequiresToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig(true))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/favorite", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Gate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
