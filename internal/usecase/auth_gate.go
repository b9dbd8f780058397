// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"shelter/internal/domain/entity"
)

// AuthGate checks the caller's session before any protected operation runs.
type AuthGate interface {
	// Authenticate resolves a session token into the authenticated user.
	// A rejected session surfaces as domainerrors.ErrSessionInvalid.
	Authenticate(ctx context.Context, sessionToken string) (*entity.AuthenticatedUser, error)
}
