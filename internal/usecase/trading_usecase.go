package usecase

import (
	"context"

	"shelter/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCatInput carries the fields needed to register a new cat.
type AddCatInput struct {
	Breed string `json:"breed"` // Canonical breed name, resolved against the catalog
	Name  string `json:"name"`  // Display name chosen by the registering user
	Photo string `json:"photo"` // Photo URL, optional
}

// TradingUsecase covers the purchase and registration workflows.
type TradingUsecase interface {
	// BuyCat sells the cat at its current exchange price and cleans up the
	// local records that referenced it.
	BuyCat(ctx context.Context, sessionToken string, catID uuid.UUID) (*entity.Bill, error)

	// AddCat registers a new cat: a billing product plus a local info record.
	// Returns the id assigned to the new cat.
	AddCat(ctx context.Context, sessionToken string, input *AddCatInput) (uuid.UUID, error)
}
