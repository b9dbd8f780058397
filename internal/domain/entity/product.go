package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the billing-owned record for a sellable cat. The core never
// mutates it except through the billing "sell" and "register" calls.
type Product struct {
	ID      uuid.UUID `json:"id"`       // The Global Unique Identifier (GUID) for the product.
	BreedID uuid.UUID `json:"breed_id"` // The breed this product references in the catalog.
}

// Bill is the receipt returned by the billing collaborator after a sale.
type Bill struct {
	ID        uuid.UUID `json:"id"`         // The billing-assigned bill id.
	ProductID uuid.UUID `json:"product_id"` // The product that was sold.
	Price     float64   `json:"price"`      // The price the product was sold at.
	CreatedAt time.Time `json:"created_at"` // Timestamp of the sale, assigned by billing.
}
