// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		// A body that does not bind cannot have all fields present.
		return errors.Wrap(domainerrors.ErrMissingFields, "invalid registration body")
	}
	if input == nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "empty registration body")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "registration input incomplete")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.Register{
		Token:   output.Token,
		Account: output.Account,
	})
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "invalid login body")
	}
	if input == nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "empty login body")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "login input incomplete")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Login{
		User:  output.Account,
		Token: output.Token,
	})
}
