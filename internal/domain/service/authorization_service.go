// Package service defines the interfaces for external collaborators the core
// orchestrates. Implementations only classify their failures; the retry policy
// lives with the caller (see internal/upstream).
package service

import (
	"context"

	"shelter/internal/domain/entity"
	"shelter/internal/errors"
)

// Domain-specific errors for the authorization collaborator.
var (
	// ErrSessionRejected is returned when the collaborator reports an invalid or expired session.
	ErrSessionRejected = errors.New("session rejected")
)

// AuthorizationService validates opaque session tokens with the identity service.
type AuthorizationService interface {
	// Authorize resolves a session token into the authenticated user.
	Authorize(ctx context.Context, sessionToken string) (*entity.AuthenticatedUser, error)
}
