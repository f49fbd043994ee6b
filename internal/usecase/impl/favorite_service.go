package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// toggleMaxAttempts bounds the add/remove retry loop. Each retry only happens
// when a concurrent toggle flipped the membership between our two statements,
// so in practice the loop resolves on the first attempt.
const toggleMaxAttempts = 3

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the product's membership in the user's favorite set.
//
// The flip is insert-first: a conditional insert that reports whether it took
// effect, then a keyed delete that does the same. Whichever statement affects
// a row decides the outcome, so two concurrent toggles can never observe the
// same starting state and both "win".
func (srv *favoriteService) Toggle(ctx context.Context, input *usecase.ToggleInput) (*usecase.ToggleOutput, error) {
	if input == nil || input.User == "" || input.ProductID == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "toggle input incomplete")
	}

	for attempt := 1; attempt <= toggleMaxAttempts; attempt++ {
		added, err := srv.favoriteRepo.Add(ctx, input.User, input.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to add favorite")
		}
		if added {
			srv.log(ctx).Debug("Favorite added",
				slog.String("user", input.User), slog.String("productID", input.ProductID))

			return &usecase.ToggleOutput{Status: entity.ToggleAdded}, nil
		}

		removed, err := srv.favoriteRepo.Remove(ctx, input.User, input.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to remove favorite")
		}
		if removed {
			srv.log(ctx).Debug("Favorite removed",
				slog.String("user", input.User), slog.String("productID", input.ProductID))

			return &usecase.ToggleOutput{Status: entity.ToggleRemoved}, nil
		}

		// Neither statement affected a row: a concurrent toggle removed the
		// entry between our insert conflict and our delete. Try again.
		srv.log(ctx).Warn("Toggle raced with a concurrent toggle, retrying",
			slog.String("user", input.User),
			slog.String("productID", input.ProductID),
			slog.Int("attempt", attempt))
	}

	return nil, errors.Wrap(domainerrors.ErrInternalError, "toggle could not settle")
}

// IsFavorited reports current membership. Blank identifiers are a valid query
// for an entry that cannot exist, so they answer false rather than failing.
func (srv *favoriteService) IsFavorited(ctx context.Context, input *usecase.IsFavoriteInput) (bool, error) {
	if input == nil || input.User == "" || input.ProductID == "" {
		return false, nil
	}

	favorited, err := srv.favoriteRepo.IsFavorited(ctx, input.User, input.ProductID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite membership")
	}

	return favorited, nil
}

// List returns the user's favorite list in the order the entries were added.
func (srv *favoriteService) List(ctx context.Context, user string) (*entity.FavoriteList, error) {
	if user == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "user is required")
	}

	list, err := srv.favoriteRepo.ListByUser(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return list, nil
}
