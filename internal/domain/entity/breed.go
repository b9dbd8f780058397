package entity

import (
	"github.com/google/uuid"
)

// BreedInfo is the catalog-owned breed record, read-only to the core.
type BreedInfo struct {
	ID    uuid.UUID `json:"id"`    // The catalog's breed id.
	Name  string    `json:"name"`  // Canonical breed name, also usable as a lookup key.
	Photo string    `json:"photo"` // Representative photo URL for the breed.
}
