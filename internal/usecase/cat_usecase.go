package usecase

import (
	"context"

	"shelter/internal/domain/entity"

	"github.com/google/uuid"
)

// CatUsecase assembles full cat views from billing, the breed catalog, the
// price exchange, and the local info store.
type CatUsecase interface {
	// ListCats returns the page of cats visible to the caller. Cats without a
	// local info record are filtered out.
	ListCats(ctx context.Context, sessionToken string, skip, limit int) ([]*entity.Cat, error)

	// GetCat returns the aggregated view of a single cat.
	GetCat(ctx context.Context, sessionToken string, catID uuid.UUID) (*entity.Cat, error)

	// CatByID aggregates a single cat without a session check. Internal
	// callers that already authenticated use this directly.
	CatByID(ctx context.Context, catID uuid.UUID) (*entity.Cat, error)

	// CatShareQR renders a shareable QR code PNG for a cat listing.
	CatShareQR(ctx context.Context, sessionToken string, catID uuid.UUID) ([]byte, error)
}
