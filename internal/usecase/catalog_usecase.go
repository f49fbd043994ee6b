package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase is the thin read-only pass-through over the product catalog.
type CatalogUsecase interface {
	// SearchProducts returns products whose name contains the text,
	// case-insensitively; an empty text returns everything.
	SearchProducts(ctx context.Context, text string) ([]*entity.Product, error)

	// GetProduct returns the product with the given id, or nil when the id is
	// unknown or malformed.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}
