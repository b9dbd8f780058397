package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shelter/config"
	"shelter/internal/domain/entity"
	"shelter/internal/domain/service"

	"github.com/google/uuid"
)

type billingClient struct {
	http *httpClient
}

// NewBillingClient creates the HTTP client for the billing collaborator.
func NewBillingClient(cfg *config.Config) service.BillingService {
	return &billingClient{
		http: newHTTPClient(cfg.Upstreams.Billing),
	}
}

type productPayload struct {
	ID      uuid.UUID `json:"id"`
	BreedID uuid.UUID `json:"breed_id"`
}

func (p productPayload) toEntity() *entity.Product {
	return &entity.Product{
		ID:      p.ID,
		BreedID: p.BreedID,
	}
}

type listProductsResponse struct {
	Products []productPayload `json:"products"`
}

type sellProductRequest struct {
	Price float64 `json:"price"`
}

type billPayload struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// ListProducts retrieves a page of products from billing.
func (c *billingClient) ListProducts(ctx context.Context, skip, limit int) ([]*entity.Product, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var payload listProductsResponse
	if err := c.http.getJSON(ctx, "/products", query, &payload); err != nil {
		return nil, classify(err, nil)
	}

	products := make([]*entity.Product, 0, len(payload.Products))
	for _, product := range payload.Products {
		products = append(products, product.toEntity())
	}

	return products, nil
}

// GetProduct retrieves a single product by id.
func (c *billingClient) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var payload productPayload
	if err := c.http.getJSON(ctx, "/products/"+id.String(), nil, &payload); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusNotFound: service.ErrProductNotFound,
		})
	}

	return payload.toEntity(), nil
}

// AddProduct registers a new product with billing.
func (c *billingClient) AddProduct(ctx context.Context, product *entity.Product) error {
	body := productPayload{ID: product.ID, BreedID: product.BreedID}
	if err := c.http.postJSON(ctx, "/products", body, nil); err != nil {
		return classify(err, nil)
	}

	return nil
}

// SellProduct transfers ownership of a product at the given price.
func (c *billingClient) SellProduct(ctx context.Context, id uuid.UUID, price float64) (*entity.Bill, error) {
	var payload billPayload
	if err := c.http.postJSON(ctx, "/products/"+id.String()+"/sell", sellProductRequest{Price: price}, &payload); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusNotFound: service.ErrProductNotFound,
		})
	}

	return &entity.Bill{
		ID:        payload.ID,
		ProductID: payload.ProductID,
		Price:     payload.Price,
		CreatedAt: payload.CreatedAt,
	}, nil
}
