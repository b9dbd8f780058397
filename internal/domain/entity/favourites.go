package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Favourites is a user's set of favourite cat ids. It references cats by value
// only: there is no ownership and no automatic integrity enforcement, cleanup
// after a sale is an explicit workflow step. An empty record is valid and is
// never implicitly deleted.
type Favourites struct {
	UserID uuid.UUID   `json:"user_id"` // The owner of the record; one record per user.
	CatIDs []uuid.UUID `json:"cat_ids"` // Favourited cat ids; insertion order is irrelevant.
}

// Contains reports whether catID is in the record.
func (f *Favourites) Contains(catID uuid.UUID) bool {
	return slices.Contains(f.CatIDs, catID)
}

// Add appends catID to the record and reports whether the record changed.
func (f *Favourites) Add(catID uuid.UUID) bool {
	if f.Contains(catID) {
		return false
	}
	f.CatIDs = append(f.CatIDs, catID)

	return true
}

// Remove deletes catID from the record and reports whether the record changed.
func (f *Favourites) Remove(catID uuid.UUID) bool {
	idx := slices.Index(f.CatIDs, catID)
	if idx < 0 {
		return false
	}
	f.CatIDs = slices.Delete(f.CatIDs, idx, idx+1)

	return true
}
