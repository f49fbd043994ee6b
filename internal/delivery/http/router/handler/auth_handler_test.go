package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	output *usecase.AuthOutput
	err    error
}

func (s *stubAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.output, s.err
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.output, s.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "secret_hash",
		CreatedAt:    time.Now(),
	}
	uc := &stubAuthUsecase{output: &usecase.AuthOutput{Token: "session-token", Account: account.Public()}}
	handler := NewAuthHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/register",
		`{"email":"test@example.com","password":"pw","name":"Test User"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "token")
	assert.Contains(t, body, "account")

	// The stored hash must never appear in any response, whatever the shape.
	assert.NotContains(t, rec.Body.String(), "secret_hash")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_UsecaseError(t *testing.T) {
	uc := &stubAuthUsecase{err: domainerrors.ErrAccountExists.WrapMessage("email already registered")}
	handler := NewAuthHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/register",
		`{"email":"taken@example.com","password":"pw","name":"Test User"}`)

	err := handler.Register(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountExists))
}

func TestAuthHandler_Register_UnbindableBody(t *testing.T) {
	uc := &stubAuthUsecase{}
	handler := NewAuthHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/register", `{"email": not-json`)

	err := handler.Register(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
}

func TestAuthHandler_Register_MissingFieldRejectedBeforeUsecase(t *testing.T) {
	// The stub would happily answer; validation must reject first.
	uc := &stubAuthUsecase{output: &usecase.AuthOutput{Token: "never-issued"}}
	handler := NewAuthHandler(uc, newDiscardLogger())

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"test@example.com","password":"pw"}`},
		{"missing email", `{"password":"pw","name":"Test User"}`},
		{"missing password", `{"email":"test@example.com","name":"Test User"}`},
		{"empty body", `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/register", tc.body)

			err := handler.Register(c)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	account := &entity.Account{
		ID:    uuid.New(),
		Email: "test@example.com",
		Name:  "Test User",
	}
	uc := &stubAuthUsecase{output: &usecase.AuthOutput{Token: "session-token", Account: account.Public()}}
	handler := NewAuthHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/login",
		`{"email":"test@example.com","password":"pw"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Login nests the account under "user", not "account".
	assert.Contains(t, body, "user")
	assert.Contains(t, body, "token")
	assert.NotContains(t, body, "account")
}

func TestAuthHandler_Login_MissingFieldRejectedBeforeUsecase(t *testing.T) {
	uc := &stubAuthUsecase{output: &usecase.AuthOutput{Token: "never-issued"}}
	handler := NewAuthHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/login", `{"email":"test@example.com"}`)

	err := handler.Login(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubAuthUsecase{err: domainerrors.ErrInvalidCredentials.WrapMessage("login failed")}
	handler := NewAuthHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/login",
		`{"email":"test@example.com","password":"wrong"}`)

	err := handler.Login(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
