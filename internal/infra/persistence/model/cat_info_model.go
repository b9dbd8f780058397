package model

import (
	"time"

	"github.com/google/uuid"
)

// CatInfoModel is the GORM-specific struct for the 'cat_infos' table.
// It holds the shelter-local metadata of a cat claimed through registration.
type CatInfoModel struct {
	CatID     uuid.UUID `gorm:"type:uuid;primary_key"`
	AddedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Photo     string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatInfoModel) TableName() string {
	return "cat_infos"
}
