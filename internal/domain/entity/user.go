package entity

import (
	"github.com/google/uuid"
)

// AuthenticatedUser identifies the caller of a single request. It is produced
// only by the authorization gate and lives for one operation; it is never
// persisted.
type AuthenticatedUser struct {
	ID uuid.UUID `json:"id"` // The user id confirmed by the authorization service.
}
