package remote

import (
	"context"
	"time"

	"shelter/config"
	"shelter/internal/domain/entity"
	"shelter/internal/domain/service"

	"github.com/google/uuid"
)

type exchangeClient struct {
	http *httpClient
}

// NewExchangeClient creates the HTTP client for the price exchange collaborator.
func NewExchangeClient(cfg *config.Config) service.ExchangeService {
	return &exchangeClient{
		http: newHTTPClient(cfg.Upstreams.Exchange),
	}
}

type pricePointPayload struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

type historyResponse struct {
	Points []pricePointPayload `json:"points"`
}

type historyQueryRequest struct {
	BreedIDs []uuid.UUID `json:"breed_ids"`
}

type historyQueryResponse struct {
	Histories map[uuid.UUID][]pricePointPayload `json:"histories"`
}

func toPricePoints(points []pricePointPayload) []entity.PricePoint {
	history := make([]entity.PricePoint, 0, len(points))
	for _, point := range points {
		history = append(history, entity.PricePoint{Date: point.Date, Price: point.Price})
	}

	return history
}

// PriceHistory retrieves the ordered trading history of a single breed.
func (c *exchangeClient) PriceHistory(ctx context.Context, breedID uuid.UUID) ([]entity.PricePoint, error) {
	var payload historyResponse
	if err := c.http.getJSON(ctx, "/history/"+breedID.String(), nil, &payload); err != nil {
		return nil, classify(err, nil)
	}

	return toPricePoints(payload.Points), nil
}

// PriceHistories retrieves the trading histories of a set of breeds.
func (c *exchangeClient) PriceHistories(ctx context.Context, breedIDs []uuid.UUID) (map[uuid.UUID][]entity.PricePoint, error) {
	var payload historyQueryResponse
	if err := c.http.postJSON(ctx, "/history/query", historyQueryRequest{BreedIDs: breedIDs}, &payload); err != nil {
		return nil, classify(err, nil)
	}

	histories := make(map[uuid.UUID][]entity.PricePoint, len(payload.Histories))
	for breedID, points := range payload.Histories {
		histories[breedID] = toPricePoints(points)
	}

	return histories, nil
}
