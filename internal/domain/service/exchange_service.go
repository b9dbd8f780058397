package service

import (
	"context"

	"shelter/internal/domain/entity"

	"github.com/google/uuid"
)

// ExchangeService is the read-only price history collaborator. A breed with no
// trading history yields an empty sequence, not an error.
type ExchangeService interface {
	// PriceHistory retrieves the ordered trading history of a single breed.
	PriceHistory(ctx context.Context, breedID uuid.UUID) ([]entity.PricePoint, error)

	// PriceHistories retrieves the trading histories of a set of breeds.
	PriceHistories(ctx context.Context, breedIDs []uuid.UUID) (map[uuid.UUID][]entity.PricePoint, error)
}
