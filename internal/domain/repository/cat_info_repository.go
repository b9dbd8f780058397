package repository

import (
	"context"

	"shelter/internal/domain/entity"
	"shelter/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cat info persistence.
var (
	// ErrCatInfoNotFound is returned when a cat has no local info record.
	ErrCatInfoNotFound = errors.New("cat info not found")
	// ErrDuplicateCatInfo is returned when trying to create a record for a cat that already has one.
	ErrDuplicateCatInfo = errors.New("cat info already exists")
)

// CatInfoRepository defines the interface for local cat info store operations.
type CatInfoRepository interface {
	// Find retrieves the local info record for a cat.
	Find(ctx context.Context, catID uuid.UUID) (*entity.CatInfo, error)

	// FindByCats retrieves the info records for a set of cats. Cats without a
	// record are simply absent from the result; that is not an error.
	FindByCats(ctx context.Context, catIDs []uuid.UUID) ([]*entity.CatInfo, error)

	// Create persists a new cat info record.
	Create(ctx context.Context, info *entity.CatInfo) error

	// Delete removes the info record for a cat.
	Delete(ctx context.Context, catID uuid.UUID) error
}
