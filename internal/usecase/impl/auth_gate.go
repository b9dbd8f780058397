// Package impl provides the concrete implementations of the use case interfaces.
package impl

import (
	"context"

	"shelter/internal/domain/entity"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/domain/service"
	"shelter/internal/upstream"
	"shelter/internal/usecase"

	"github.com/pkg/errors"
)

type authGate struct {
	authService service.AuthorizationService
}

// NewAuthGate creates the authorization gate fronting every protected operation.
func NewAuthGate(authService service.AuthorizationService) usecase.AuthGate {
	return &authGate{
		authService: authService,
	}
}

// Authenticate resolves a session token into the authenticated user.
func (g *authGate) Authenticate(ctx context.Context, sessionToken string) (*entity.AuthenticatedUser, error) {
	user, err := upstream.Call(ctx, func(ctx context.Context) (*entity.AuthenticatedUser, error) {
		return g.authService.Authorize(ctx, sessionToken)
	})
	if err != nil {
		if errors.Is(err, service.ErrSessionRejected) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session rejected by authorization service")
		}

		return nil, errors.Wrap(err, "failed to authorize session")
	}

	return user, nil
}
