package remote

import (
	"context"
	"net/http"
	"net/url"

	"shelter/config"
	"shelter/internal/domain/entity"
	"shelter/internal/domain/service"

	"github.com/google/uuid"
)

type catalogClient struct {
	http *httpClient
}

// NewCatalogClient creates the HTTP client for the breed catalog collaborator.
func NewCatalogClient(cfg *config.Config) service.CatalogService {
	return &catalogClient{
		http: newHTTPClient(cfg.Upstreams.Catalog),
	}
}

type breedPayload struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Photo string    `json:"photo"`
}

func (p breedPayload) toEntity() *entity.BreedInfo {
	return &entity.BreedInfo{
		ID:    p.ID,
		Name:  p.Name,
		Photo: p.Photo,
	}
}

type breedQueryRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type breedQueryResponse struct {
	Breeds []breedPayload `json:"breeds"`
}

// FindBreedByName retrieves breed info by its canonical name.
func (c *catalogClient) FindBreedByName(ctx context.Context, name string) (*entity.BreedInfo, error) {
	query := url.Values{}
	query.Set("name", name)

	var payload breedPayload
	if err := c.http.getJSON(ctx, "/breeds", query, &payload); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusNotFound: service.ErrBreedNotFound,
		})
	}

	return payload.toEntity(), nil
}

// FindBreedsByIDs retrieves breed info for a set of breed ids.
func (c *catalogClient) FindBreedsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.BreedInfo, error) {
	var payload breedQueryResponse
	if err := c.http.postJSON(ctx, "/breeds/query", breedQueryRequest{IDs: ids}, &payload); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusBadRequest: service.ErrBreedQueryRejected,
		})
	}

	breeds := make([]*entity.BreedInfo, 0, len(payload.Breeds))
	for _, breed := range payload.Breeds {
		breeds = append(breeds, breed.toEntity())
	}

	return breeds, nil
}
