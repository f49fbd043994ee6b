package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockCatalogRepository) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	})

	return service, catalogRepo
}

func TestCatalogService_SearchProducts(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Espresso Machine"},
		{ID: uuid.New(), Name: "Espresso Cups"},
	}

	catalogRepo.EXPECT().Search(ctx, "espresso").Return(products, nil)

	got, err := service.SearchProducts(ctx, "espresso")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_GetProduct_Found(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Espresso Machine"}

	catalogRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	got, err := service.GetProduct(ctx, product.ID.String())

	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProduct_UnknownID(t *testing.T) {
	service, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	id := uuid.New()

	catalogRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	got, err := service.GetProduct(ctx, id.String())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogService_GetProduct_MalformedID(t *testing.T) {
	service, _ := createTestCatalogService(t)

	// No repository call at all: a malformed id can never match.
	got, err := service.GetProduct(context.Background(), "not-a-uuid")

	require.NoError(t, err)
	assert.Nil(t, got)
}
