package impl

import (
	"context"
	"log/slog"

	"shelter/config"
	"shelter/internal/domain/entity"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/domain/repository"
	"shelter/internal/domain/service"
	"shelter/internal/upstream"
	"shelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type tradingService struct {
	billing       service.BillingService
	catalog       service.CatalogService
	exchange      service.ExchangeService
	catInfoRepo   repository.CatInfoRepository
	favouriteRepo repository.FavouriteRepository
	authGate      usecase.AuthGate
	config        *config.Config
	logger        *slog.Logger
}

// NewTradingService creates the purchase and registration use case.
func NewTradingService(
	billing service.BillingService,
	catalog service.CatalogService,
	exchange service.ExchangeService,
	catInfoRepo repository.CatInfoRepository,
	favouriteRepo repository.FavouriteRepository,
	authGate usecase.AuthGate,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TradingUsecase {
	return &tradingService{
		billing:       billing,
		catalog:       catalog,
		exchange:      exchange,
		catInfoRepo:   catInfoRepo,
		favouriteRepo: favouriteRepo,
		authGate:      authGate,
		config:        cfg,
		logger:        logger,
	}
}

// BuyCat sells the cat at its current exchange price and cleans up the local
// records that referenced it.
func (s *tradingService) BuyCat(ctx context.Context, sessionToken string, catID uuid.UUID) (*entity.Bill, error) {
	if _, err := s.authGate.Authenticate(ctx, sessionToken); err != nil {
		return nil, err
	}

	product, err := upstream.Call(ctx, func(ctx context.Context) (*entity.Product, error) {
		return s.billing.GetProduct(ctx, catID)
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return nil, domainerrors.ErrCatNotFound.WrapMessage("billing does not know this cat")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	history, err := upstream.Call(ctx, func(ctx context.Context) ([]entity.PricePoint, error) {
		return s.exchange.PriceHistory(ctx, product.BreedID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch price history")
	}

	price := s.config.Shelter.DefaultPrice
	if len(history) > 0 {
		price = history[len(history)-1].Price
	}

	bill, err := upstream.Call(ctx, func(ctx context.Context) (*entity.Bill, error) {
		return s.billing.SellProduct(ctx, catID, price)
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return nil, domainerrors.ErrCatNotFound.WrapMessage("cat was sold concurrently")
		}

		return nil, errors.Wrap(err, "failed to sell product")
	}

	if err := s.cleanupAfterSale(ctx, catID); err != nil {
		return nil, err
	}

	return bill, nil
}

// cleanupAfterSale removes the sold cat from every favourites record and drops
// its local info. Favourites failures are logged and swallowed because reads
// skip stale references anyway; a failed info delete is surfaced, since a
// still-claimed record would keep the sold cat listable.
func (s *tradingService) cleanupAfterSale(ctx context.Context, catID uuid.UUID) error {
	records, err := s.favouriteRepo.FindByCat(ctx, catID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to find favourites referencing sold cat",
			slog.String("catId", catID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		for _, record := range records {
			if !record.Remove(catID) {
				continue
			}
			if err := s.favouriteRepo.Upsert(ctx, record); err != nil {
				s.logger.WarnContext(ctx, "failed to remove sold cat from favourites",
					slog.String("catId", catID.String()),
					slog.String("userId", record.UserID.String()),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	if err := s.catInfoRepo.Delete(ctx, catID); err != nil && !errors.Is(err, repository.ErrCatInfoNotFound) {
		return errors.Wrap(err, "failed to release sold cat info")
	}

	return nil
}

// AddCat registers a new cat: a billing product plus a local info record.
func (s *tradingService) AddCat(ctx context.Context, sessionToken string, input *usecase.AddCatInput) (uuid.UUID, error) {
	user, err := s.authGate.Authenticate(ctx, sessionToken)
	if err != nil {
		return uuid.Nil, err
	}

	breed, err := upstream.Call(ctx, func(ctx context.Context) (*entity.BreedInfo, error) {
		return s.catalog.FindBreedByName(ctx, input.Breed)
	})
	if err != nil {
		if errors.Is(err, service.ErrBreedNotFound) {
			return uuid.Nil, domainerrors.ErrBreedUnknown.WrapMessage("catalog does not know breed " + input.Breed)
		}

		return uuid.Nil, errors.Wrap(err, "failed to resolve breed")
	}

	catID := uuid.New()

	if err := upstream.CallVoid(ctx, func(ctx context.Context) error {
		return s.billing.AddProduct(ctx, &entity.Product{ID: catID, BreedID: breed.ID})
	}); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to register product")
	}

	info := &entity.CatInfo{
		CatID:   catID,
		AddedBy: user.ID,
		Name:    input.Name,
		Photo:   input.Photo,
	}
	if err := s.catInfoRepo.Create(ctx, info); err != nil {
		// The billing product stays behind unclaimed; it is invisible to
		// listings until someone registers it again.
		return uuid.Nil, errors.Wrap(err, "failed to create cat info")
	}

	return catID, nil
}
