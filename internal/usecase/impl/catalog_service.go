package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// SearchProducts returns products matching the text, or every product when
// the text is empty.
func (srv *catalogService) SearchProducts(ctx context.Context, text string) ([]*entity.Product, error) {
	products, err := srv.catalogRepo.Search(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// GetProduct looks up a single product. A malformed or unknown id is not an
// error; the caller receives nil and renders an empty body.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		srv.logger.Debug("Rejecting malformed product id", slog.String("id", id))

		return nil, nil
	}

	product, err := srv.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}
