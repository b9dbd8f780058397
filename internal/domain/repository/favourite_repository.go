// Package repository defines the interfaces for the local persistence layer.
package repository

import (
	"context"

	"shelter/internal/domain/entity"
	"shelter/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favourites persistence.
var (
	// ErrFavouritesNotFound is returned when a user has no favourites record.
	ErrFavouritesNotFound = errors.New("favourites record not found")
)

// FavouriteRepository defines the interface for favourites-related local store operations.
type FavouriteRepository interface {
	// FindByUser retrieves the favourites record for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Favourites, error)

	// FindByCat retrieves every favourites record whose id set contains catID.
	// Used by the purchase workflow's cascade cleanup.
	FindByCat(ctx context.Context, catID uuid.UUID) ([]*entity.Favourites, error)

	// Upsert creates or replaces the favourites record for a user.
	Upsert(ctx context.Context, record *entity.Favourites) error
}
