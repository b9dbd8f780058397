package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatInfo is the shelter-local record holding everything the upstream services
// do not own: display name, photo and who registered the cat. A cat without a
// CatInfo record has not been claimed by the shelter and is invisible to
// listings. Created by registration, deleted by purchase, otherwise immutable.
type CatInfo struct {
	CatID     uuid.UUID `json:"cat_id"`          // The cat (billing product) this record belongs to.
	AddedBy   uuid.UUID `json:"added_by"`        // The user who registered the cat.
	Name      string    `json:"name"`            // Display name given at registration.
	Photo     string    `json:"photo,omitempty"` // Optional photo URL.
	CreatedAt time.Time `json:"created_at"`      // Timestamp of registration.
}
