package service

import (
	"context"

	"shelter/internal/domain/entity"
	"shelter/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the breed catalog collaborator.
var (
	// ErrBreedNotFound is returned when the catalog does not know the breed name.
	ErrBreedNotFound = errors.New("breed not found")
	// ErrBreedQueryRejected is returned when the catalog refuses a breed id query.
	ErrBreedQueryRejected = errors.New("breed query rejected")
)

// CatalogService is the read-only breed information collaborator.
type CatalogService interface {
	// FindBreedByName retrieves breed info by its canonical name.
	FindBreedByName(ctx context.Context, name string) (*entity.BreedInfo, error)

	// FindBreedsByIDs retrieves breed info for a set of breed ids. Ids the
	// catalog cannot resolve are simply absent from the result.
	FindBreedsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.BreedInfo, error)
}
