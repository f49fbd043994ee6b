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

// FavoriteHandler holds dependencies for favorite bookmarking handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Toggle handles the favorite toggle request.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	var input *usecase.ToggleInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid toggle body")
	}
	if input == nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "empty toggle body")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "toggle input incomplete")
	}

	output, err := h.uc.Toggle(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Toggle{Status: output.Status})
}

// IsFavorite handles the membership query request.
func (h *FavoriteHandler) IsFavorite(c echo.Context) error {
	var input *usecase.IsFavoriteInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query body")
	}

	favorited, err := h.uc.IsFavorited(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.IsFavorite{IsFavorited: favorited})
}

// List handles the favorite list request.
func (h *FavoriteHandler) List(c echo.Context) error {
	user := c.Param("user")

	list, err := h.uc.List(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	productIDs := list.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return c.JSON(http.StatusOK, response.FavoriteList{
		User:       list.User,
		ProductIDs: productIDs,
	})
}
