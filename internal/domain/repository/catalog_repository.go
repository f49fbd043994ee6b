package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no catalog entry matches the given id.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read-only gateway to the product catalog.
type CatalogRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Search returns products whose name contains the given text,
	// case-insensitively. An empty search returns the whole catalog.
	Search(ctx context.Context, text string) ([]*entity.Product, error)
}
