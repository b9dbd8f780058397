package impl

import (
	"context"
	"log/slog"
	"sync"

	"shelter/internal/domain/entity"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/domain/repository"
	"shelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type favouriteService struct {
	favouriteRepo repository.FavouriteRepository
	catInfoRepo   repository.CatInfoRepository
	cats          usecase.CatUsecase
	authGate      usecase.AuthGate
	logger        *slog.Logger

	// Serializes the read-modify-write cycle per user so concurrent mutations
	// of the same favourites record cannot lose updates.
	mu        sync.Mutex
	userLocks map[uuid.UUID]*sync.Mutex
}

// NewFavouriteService creates the favourites use case.
func NewFavouriteService(
	favouriteRepo repository.FavouriteRepository,
	catInfoRepo repository.CatInfoRepository,
	cats usecase.CatUsecase,
	authGate usecase.AuthGate,
	logger *slog.Logger,
) usecase.FavouriteUsecase {
	return &favouriteService{
		favouriteRepo: favouriteRepo,
		catInfoRepo:   catInfoRepo,
		cats:          cats,
		authGate:      authGate,
		logger:        logger,
		userLocks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *favouriteService) lockUser(userID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}

	return lock
}

// AddFavourite records catID in the caller's favourites.
func (s *favouriteService) AddFavourite(ctx context.Context, sessionToken string, catID uuid.UUID) error {
	user, err := s.authGate.Authenticate(ctx, sessionToken)
	if err != nil {
		return err
	}

	// Only cats the shelter claimed can be favourited; unknown ids are a no-op.
	if _, err := s.catInfoRepo.Find(ctx, catID); err != nil {
		if errors.Is(err, repository.ErrCatInfoNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check cat info")
	}

	lock := s.lockUser(user.ID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.favouriteRepo.FindByUser(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrFavouritesNotFound) {
			return errors.Wrap(err, "failed to load favourites")
		}
		// First favourite of this user; the record is created lazily.
		record = &entity.Favourites{UserID: user.ID}
	}

	if !record.Add(catID) {
		return nil
	}

	if err := s.favouriteRepo.Upsert(ctx, record); err != nil {
		return errors.Wrap(err, "failed to save favourites")
	}

	return nil
}

// ListFavourites returns the aggregated views of the caller's favourite cats.
func (s *favouriteService) ListFavourites(ctx context.Context, sessionToken string) ([]*entity.Cat, error) {
	user, err := s.authGate.Authenticate(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	record, err := s.favouriteRepo.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrFavouritesNotFound) {
			return []*entity.Cat{}, nil
		}

		return nil, errors.Wrap(err, "failed to load favourites")
	}

	infoList, err := s.catInfoRepo.FindByCats(ctx, record.CatIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cat infos")
	}
	claimed := make(map[uuid.UUID]struct{}, len(infoList))
	for _, info := range infoList {
		claimed[info.CatID] = struct{}{}
	}

	cats := make([]*entity.Cat, 0, len(record.CatIDs))
	for _, catID := range record.CatIDs {
		if _, ok := claimed[catID]; !ok {
			// No local info means the cat was sold or never claimed; a billing
			// product alone must not surface here. Skip without mutating the record.
			s.logger.WarnContext(ctx, "favourite no longer claimed by the shelter",
				slog.String("catId", catID.String()),
			)

			continue
		}

		cat, err := s.cats.CatByID(ctx, catID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrCatNotFound) {
				// Sold between the info lookup and the fetch; same treatment.
				s.logger.WarnContext(ctx, "favourite no longer resolves",
					slog.String("catId", catID.String()),
				)

				continue
			}

			return nil, err
		}
		cats = append(cats, cat)
	}

	return cats, nil
}

// RemoveFavourite drops catID from the caller's favourites.
func (s *favouriteService) RemoveFavourite(ctx context.Context, sessionToken string, catID uuid.UUID) error {
	user, err := s.authGate.Authenticate(ctx, sessionToken)
	if err != nil {
		return err
	}

	lock := s.lockUser(user.ID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.favouriteRepo.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrFavouritesNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load favourites")
	}

	if !record.Remove(catID) {
		return nil
	}

	if err := s.favouriteRepo.Upsert(ctx, record); err != nil {
		return errors.Wrap(err, "failed to save favourites")
	}

	return nil
}
