package service

import (
	"context"

	"shelter/internal/domain/entity"
	"shelter/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the billing collaborator.
var (
	// ErrProductNotFound is returned when billing does not know the product (unknown or already sold).
	ErrProductNotFound = errors.New("product not found")
)

// BillingService is the product and sales ledger collaborator.
type BillingService interface {
	// ListProducts retrieves a page of products. Pagination bounds are
	// enforced by billing itself, not re-validated here.
	ListProducts(ctx context.Context, skip, limit int) ([]*entity.Product, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// AddProduct registers a new product with billing.
	AddProduct(ctx context.Context, product *entity.Product) error

	// SellProduct transfers ownership of a product at the given price and
	// returns the resulting bill.
	SellProduct(ctx context.Context, id uuid.UUID, price float64) (*entity.Bill, error)
}
