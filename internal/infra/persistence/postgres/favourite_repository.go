// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shelter/internal/domain/entity"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/domain/repository"
	"shelter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favouriteRepository implements the repository.FavouriteRepository interface.
type favouriteRepository struct {
	db *gorm.DB
}

// NewFavouriteRepository is the constructor for favouriteRepository.
func NewFavouriteRepository(db *gorm.DB) repository.FavouriteRepository {
	return &favouriteRepository{
		db: db,
	}
}

// FindByUser retrieves the favourites record for a user.
func (repo *favouriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Favourites, error) {
	var favouritesM model.FavouritesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&favouritesM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavouritesNotFound
		}

		return nil, errors.Wrap(err, "failed to find favourites by user")
	}

	return toFavouritesDomain(&favouritesM), nil
}

// FindByCat retrieves every favourites record whose cat id set contains catID.
func (repo *favouriteRepository) FindByCat(ctx context.Context, catID uuid.UUID) ([]*entity.Favourites, error) {
	var favouritesModels []*model.FavouritesModel

	if err := repo.db.WithContext(ctx).
		Where(datatypes.JSONArrayQuery("cat_ids").Contains(catID.String())).
		Find(&favouritesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favourites by cat")
	}

	records := make([]*entity.Favourites, 0, len(favouritesModels))
	for _, favouritesM := range favouritesModels {
		records = append(records, toFavouritesDomain(favouritesM))
	}

	return records, nil
}

// Upsert creates or replaces the favourites record for a user. The whole id
// set is written in one statement so concurrent mutations for the same user
// never interleave partially.
func (repo *favouriteRepository) Upsert(ctx context.Context, record *entity.Favourites) error {
	favouritesM := fromFavouritesDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"cat_ids", "updated_at"}),
		}).
		Create(favouritesM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert favourites")
	}

	return nil
}

// --- Mapper Functions ---

// toFavouritesDomain converts a GORM FavouritesModel to a domain Favourites entity.
func toFavouritesDomain(data *model.FavouritesModel) *entity.Favourites {
	if data == nil {
		return nil
	}

	return &entity.Favourites{
		UserID: data.UserID,
		CatIDs: data.CatIDs,
	}
}

// fromFavouritesDomain converts a domain Favourites entity to a GORM FavouritesModel.
func fromFavouritesDomain(data *entity.Favourites) *model.FavouritesModel {
	if data == nil {
		return nil
	}

	return &model.FavouritesModel{
		UserID: data.UserID,
		CatIDs: datatypes.NewJSONSlice(data.CatIDs),
	}
}
