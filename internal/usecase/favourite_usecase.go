package usecase

import (
	"context"

	"shelter/internal/domain/entity"

	"github.com/google/uuid"
)

// FavouriteUsecase manages each user's set of favourite cats.
type FavouriteUsecase interface {
	// AddFavourite records catID in the caller's favourites. Adding a cat that
	// is already present, or one the shelter never claimed, is a silent no-op.
	AddFavourite(ctx context.Context, sessionToken string, catID uuid.UUID) error

	// ListFavourites returns the aggregated views of the caller's favourite
	// cats. Favourites that no longer resolve are skipped, not removed.
	ListFavourites(ctx context.Context, sessionToken string) ([]*entity.Cat, error)

	// RemoveFavourite drops catID from the caller's favourites. Removing an
	// absent id is a no-op.
	RemoveFavourite(ctx context.Context, sessionToken string, catID uuid.UUID) error
}
