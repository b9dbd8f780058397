package postgres

import (
	"context"

	"shelter/internal/domain/entity"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/domain/repository"
	"shelter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catInfoRepository implements the repository.CatInfoRepository interface.
type catInfoRepository struct {
	db *gorm.DB
}

// NewCatInfoRepository is the constructor for catInfoRepository.
func NewCatInfoRepository(db *gorm.DB) repository.CatInfoRepository {
	return &catInfoRepository{
		db: db,
	}
}

// Find retrieves the local info record for a cat.
func (repo *catInfoRepository) Find(ctx context.Context, catID uuid.UUID) (*entity.CatInfo, error) {
	var catInfoM model.CatInfoModel

	if err := repo.db.WithContext(ctx).
		Where("cat_id = ?", catID).
		First(&catInfoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find cat info")
	}

	return toCatInfoDomain(&catInfoM), nil
}

// FindByCats retrieves the info records for a set of cats. Cats without a
// record are simply absent from the result.
func (repo *catInfoRepository) FindByCats(ctx context.Context, catIDs []uuid.UUID) ([]*entity.CatInfo, error) {
	if len(catIDs) == 0 {
		return []*entity.CatInfo{}, nil
	}

	var catInfoModels []*model.CatInfoModel

	if err := repo.db.WithContext(ctx).
		Where("cat_id IN ?", catIDs).
		Find(&catInfoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cat infos by cats")
	}

	infos := make([]*entity.CatInfo, 0, len(catInfoModels))
	for _, catInfoM := range catInfoModels {
		infos = append(infos, toCatInfoDomain(catInfoM))
	}

	return infos, nil
}

// Create persists a new cat info record.
func (repo *catInfoRepository) Create(ctx context.Context, info *entity.CatInfo) error {
	catInfoM := fromCatInfoDomain(info)

	if err := repo.db.WithContext(ctx).Create(catInfoM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCatInfo
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required cat information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cat info")
	}

	info.CreatedAt = catInfoM.CreatedAt

	return nil
}

// Delete removes the info record for a cat.
func (repo *catInfoRepository) Delete(ctx context.Context, catID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("cat_id = ?", catID).
		Delete(&model.CatInfoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cat info")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCatInfoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCatInfoDomain converts a GORM CatInfoModel to a domain CatInfo entity.
func toCatInfoDomain(data *model.CatInfoModel) *entity.CatInfo {
	if data == nil {
		return nil
	}

	return &entity.CatInfo{
		CatID:     data.CatID,
		AddedBy:   data.AddedBy,
		Name:      data.Name,
		Photo:     data.Photo,
		CreatedAt: data.CreatedAt,
	}
}

// fromCatInfoDomain converts a domain CatInfo entity to a GORM CatInfoModel.
func fromCatInfoDomain(data *entity.CatInfo) *model.CatInfoModel {
	if data == nil {
		return nil
	}

	return &model.CatInfoModel{
		CatID:     data.CatID,
		AddedBy:   data.AddedBy,
		Name:      data.Name,
		Photo:     data.Photo,
		CreatedAt: data.CreatedAt,
	}
}
