package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
//
// Both mutating operations are single conditional statements. The composite
// unique index on (user_key, product_id) makes INSERT ... ON CONFLICT DO
// NOTHING and the keyed DELETE each atomic membership checks-and-writes, so
// concurrent toggles serialize at the database instead of racing in the
// application.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the membership if absent. RowsAffected tells us whether this
// call won the insert or hit the conflict path.
func (repo *favoriteRepository) Add(ctx context.Context, user, productID string) (bool, error) {
	favoriteM := &model.FavoriteModel{
		UserKey:   user,
		ProductID: productID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_key"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(favoriteM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add favorite")
	}

	return result.RowsAffected == 1, nil
}

// Remove deletes the membership if present.
func (repo *favoriteRepository) Remove(ctx context.Context, user, productID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_key = ? AND product_id = ?", user, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove favorite")
	}

	return result.RowsAffected == 1, nil
}

// IsFavorited reports current membership with a single existence query.
func (repo *favoriteRepository) IsFavorited(ctx context.Context, user, productID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_key = ? AND product_id = ?", user, productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite membership")
	}

	return count > 0, nil
}

// ListByUser returns every product id the user has favorited.
// An unknown user yields an empty list; the aggregate has no row of its own.
func (repo *favoriteRepository) ListByUser(ctx context.Context, user string) (*entity.FavoriteList, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_key = ?", user).
		Order("created_at ASC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by user")
	}

	productIDs := make([]string, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		productIDs = append(productIDs, favoriteM.ProductID)
	}

	return &entity.FavoriteList{
		User:       user,
		ProductIDs: productIDs,
	}, nil
}
