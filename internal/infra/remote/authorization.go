package remote

import (
	"context"
	"net/http"

	"shelter/config"
	"shelter/internal/domain/entity"
	"shelter/internal/domain/service"

	"github.com/google/uuid"
)

type authorizationClient struct {
	http *httpClient
}

// NewAuthorizationClient creates the HTTP client for the session authorization collaborator.
func NewAuthorizationClient(cfg *config.Config) service.AuthorizationService {
	return &authorizationClient{
		http: newHTTPClient(cfg.Upstreams.Authorization),
	}
}

type authorizeRequest struct {
	SessionToken string `json:"session_token"`
}

type authorizeResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// Authorize resolves a session token into the authenticated user.
func (c *authorizationClient) Authorize(ctx context.Context, sessionToken string) (*entity.AuthenticatedUser, error) {
	var payload authorizeResponse
	if err := c.http.postJSON(ctx, "/sessions/authorize", authorizeRequest{SessionToken: sessionToken}, &payload); err != nil {
		return nil, classify(err, map[int]error{
			http.StatusUnauthorized: service.ErrSessionRejected,
			http.StatusForbidden:    service.ErrSessionRejected,
		})
	}

	return &entity.AuthenticatedUser{ID: payload.UserID}, nil
}
