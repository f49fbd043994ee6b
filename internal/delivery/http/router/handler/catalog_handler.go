package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the read-only product endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search handles the product listing request. The optional "search" query
// parameter filters by name; without it the full catalog is returned.
func (h *CatalogHandler) Search(c echo.Context) error {
	products, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	// Clients expect an array even when nothing matches.
	if products == nil {
		products = []*entity.Product{}
	}

	return c.JSON(http.StatusOK, products)
}

// Get handles the single product request. Unknown and malformed ids answer
// 200 with a null body, which is what the storefront client expects.
func (h *CatalogHandler) Get(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	if product == nil {
		return c.JSON(http.StatusOK, nil)
	}

	return c.JSON(http.StatusOK, product)
}
