// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PricePoint is a single entry in a breed's trading history on the exchange.
type PricePoint struct {
	Date  time.Time `json:"date"`  // Timestamp of the recorded trade.
	Price float64   `json:"price"` // Price of the trade in currency units.
}

// Cat is the user-facing aggregate assembled on every read from the billing
// product, the catalog breed record, the exchange price history and the local
// cat info record. It lives for a single request and is never persisted.
type Cat struct {
	ID           uuid.UUID    `json:"id"`                    // Product id in billing, also the shelter-wide cat id.
	BreedID      uuid.UUID    `json:"breed_id"`              // The breed referenced by the billing product.
	Breed        string       `json:"breed,omitempty"`       // Breed name from the catalog; empty if the catalog cannot resolve the breed.
	BreedPhoto   string       `json:"breed_photo,omitempty"` // Breed photo URL from the catalog.
	Name         string       `json:"name,omitempty"`        // Display name from the local cat info record.
	Photo        string       `json:"photo,omitempty"`       // Photo URL from the local cat info record.
	AddedBy      uuid.UUID    `json:"added_by,omitempty"`    // The user who registered the cat with the shelter.
	PriceHistory []PricePoint `json:"price_history"`         // Ordered trading history for the breed; may be empty.
	Price        float64      `json:"price"`                 // Current price: last history entry, or the default when the breed has no trades.
}
