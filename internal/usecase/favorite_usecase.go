package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ToggleInput defines the data required to toggle a favorite.
// User is an opaque identity key supplied by the caller.
type ToggleInput struct {
	User      string `json:"user" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// ToggleOutput reports which way the toggle went.
type ToggleOutput struct {
	Status entity.ToggleStatus
}

// IsFavoriteInput defines the data for a membership query.
type IsFavoriteInput struct {
	User      string `json:"user"`
	ProductID string `json:"productId"`
}

// FavoriteUsecase defines the interface for favorite bookmarking operations.
type FavoriteUsecase interface {
	// Toggle flips membership of the product in the user's favorite set:
	// absent becomes present ("added"), present becomes absent ("removed").
	// Repeated calls alternate; it is a genuine toggle, not an idempotent add.
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error)

	// IsFavorited reports whether the product is currently in the user's set.
	IsFavorited(ctx context.Context, input *IsFavoriteInput) (bool, error)

	// List returns the user's full favorite list, empty when the user has
	// never favorited anything.
	List(ctx context.Context, user string) (*entity.FavoriteList, error)
}
