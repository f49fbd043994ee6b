package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// FavoriteRepository defines set-membership operations over per-user favorites.
//
// Add and Remove are required to be atomic conditional writes: each one is a
// single statement that both checks membership and mutates it, so two
// concurrent toggles of the same (user, productID) can never both observe
// "absent" and insert twice, nor both observe "present" and delete twice.
type FavoriteRepository interface {
	// Add inserts the membership if absent. Reports whether a row was inserted.
	Add(ctx context.Context, user, productID string) (bool, error)

	// Remove deletes the membership if present. Reports whether a row was deleted.
	Remove(ctx context.Context, user, productID string) (bool, error)

	// IsFavorited reports whether productID is currently a member of the user's set.
	IsFavorited(ctx context.Context, user, productID string) (bool, error)

	// ListByUser returns the user's favorite list. A user with no favorites
	// yields an empty list, not an error.
	ListByUser(ctx context.Context, user string) (*entity.FavoriteList, error)
}
