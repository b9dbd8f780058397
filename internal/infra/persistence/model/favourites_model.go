package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FavouritesModel is the GORM-specific struct for the 'favourites' table.
// One row per user; the cat id set is stored as a jsonb array so the whole
// record is replaced atomically on every mutation.
type FavouritesModel struct {
	UserID    uuid.UUID                      `gorm:"type:uuid;primary_key"`
	CatIDs    datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null;default:'[]'"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavouritesModel) TableName() string {
	return "favourites"
}
