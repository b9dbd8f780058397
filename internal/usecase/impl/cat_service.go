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
	"golang.org/x/sync/errgroup"
)

type catService struct {
	billing       service.BillingService
	catalog       service.CatalogService
	exchange      service.ExchangeService
	catInfoRepo   repository.CatInfoRepository
	qrcodeService service.QRCodeService
	authGate      usecase.AuthGate
	config        *config.Config
	logger        *slog.Logger
}

// NewCatService creates the cat aggregation use case.
func NewCatService(
	billing service.BillingService,
	catalog service.CatalogService,
	exchange service.ExchangeService,
	catInfoRepo repository.CatInfoRepository,
	qrcodeService service.QRCodeService,
	authGate usecase.AuthGate,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatUsecase {
	return &catService{
		billing:       billing,
		catalog:       catalog,
		exchange:      exchange,
		catInfoRepo:   catInfoRepo,
		qrcodeService: qrcodeService,
		authGate:      authGate,
		config:        cfg,
		logger:        logger,
	}
}

// breedData is the joined result of the catalog and exchange fan-out.
type breedData struct {
	breeds    map[uuid.UUID]*entity.BreedInfo
	histories map[uuid.UUID][]entity.PricePoint
}

// ListCats returns the page of cats visible to the caller.
func (s *catService) ListCats(ctx context.Context, sessionToken string, skip, limit int) ([]*entity.Cat, error) {
	if _, err := s.authGate.Authenticate(ctx, sessionToken); err != nil {
		return nil, err
	}

	products, err := upstream.Call(ctx, func(ctx context.Context) ([]*entity.Product, error) {
		return s.billing.ListProducts(ctx, skip, limit)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	data, err := s.fetchBreedData(ctx, distinctBreedIDs(products))
	if err != nil {
		return nil, err
	}

	catIDs := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		catIDs = append(catIDs, product.ID)
	}

	infoList, err := s.catInfoRepo.FindByCats(ctx, catIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cat infos")
	}
	infos := make(map[uuid.UUID]*entity.CatInfo, len(infoList))
	for _, info := range infoList {
		infos[info.CatID] = info
	}

	cats := make([]*entity.Cat, 0, len(products))
	for _, product := range products {
		info := infos[product.ID]
		if info == nil {
			// Not yet claimed by the shelter; invisible to listings.
			continue
		}
		cats = append(cats, s.mergeCat(product, info, data))
	}

	return cats, nil
}

// GetCat returns the aggregated view of a single cat for an authenticated caller.
func (s *catService) GetCat(ctx context.Context, sessionToken string, catID uuid.UUID) (*entity.Cat, error) {
	if _, err := s.authGate.Authenticate(ctx, sessionToken); err != nil {
		return nil, err
	}

	return s.CatByID(ctx, catID)
}

// CatByID aggregates a single cat without a session check.
func (s *catService) CatByID(ctx context.Context, catID uuid.UUID) (*entity.Cat, error) {
	product, err := upstream.Call(ctx, func(ctx context.Context) (*entity.Product, error) {
		return s.billing.GetProduct(ctx, catID)
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return nil, domainerrors.ErrCatNotFound.WrapMessage("billing does not know this cat")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	data, err := s.fetchBreedData(ctx, []uuid.UUID{product.BreedID})
	if err != nil {
		return nil, err
	}

	info, err := s.catInfoRepo.Find(ctx, catID)
	if err != nil && !errors.Is(err, repository.ErrCatInfoNotFound) {
		return nil, errors.Wrap(err, "failed to load cat info")
	}

	return s.mergeCat(product, info, data), nil
}

// CatShareQR renders a shareable QR code PNG for a cat listing.
func (s *catService) CatShareQR(ctx context.Context, sessionToken string, catID uuid.UUID) ([]byte, error) {
	if _, err := s.authGate.Authenticate(ctx, sessionToken); err != nil {
		return nil, err
	}

	// Only existing cats are shareable.
	if _, err := s.CatByID(ctx, catID); err != nil {
		return nil, err
	}

	pngBytes, err := s.qrcodeService.GenerateCatQR(catID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate cat QR code")
	}

	return pngBytes, nil
}

// fetchBreedData queries the catalog and the exchange concurrently and joins
// the results. A catalog domain failure degrades the view to cats without
// breed info; every other failure aborts the aggregation.
func (s *catService) fetchBreedData(ctx context.Context, breedIDs []uuid.UUID) (*breedData, error) {
	data := &breedData{
		breeds:    make(map[uuid.UUID]*entity.BreedInfo),
		histories: make(map[uuid.UUID][]entity.PricePoint),
	}
	if len(breedIDs) == 0 {
		return data, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		breeds, err := upstream.Call(groupCtx, func(ctx context.Context) ([]*entity.BreedInfo, error) {
			return s.catalog.FindBreedsByIDs(ctx, breedIDs)
		})
		if err != nil {
			if upstream.IsDomain(err) {
				s.logger.WarnContext(groupCtx, "catalog rejected breed query, serving cats without breed info",
					slog.String("error", err.Error()),
				)

				return nil
			}

			return errors.Wrap(err, "failed to fetch breed info")
		}

		for _, breed := range breeds {
			data.breeds[breed.ID] = breed
		}

		return nil
	})

	group.Go(func() error {
		histories, err := upstream.Call(groupCtx, func(ctx context.Context) (map[uuid.UUID][]entity.PricePoint, error) {
			return s.exchange.PriceHistories(ctx, breedIDs)
		})
		if err != nil {
			return errors.Wrap(err, "failed to fetch price histories")
		}
		data.histories = histories

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

// mergeCat assembles the user-facing aggregate from the collaborator results.
func (s *catService) mergeCat(product *entity.Product, info *entity.CatInfo, data *breedData) *entity.Cat {
	history := data.histories[product.BreedID]

	cat := &entity.Cat{
		ID:           product.ID,
		BreedID:      product.BreedID,
		PriceHistory: history,
		Price:        s.currentPrice(history),
	}

	if breed := data.breeds[product.BreedID]; breed != nil {
		cat.Breed = breed.Name
		cat.BreedPhoto = breed.Photo
	}

	if info != nil {
		cat.Name = info.Name
		cat.Photo = info.Photo
		cat.AddedBy = info.AddedBy
	}

	return cat
}

// currentPrice derives the selling price from a breed's trading history.
func (s *catService) currentPrice(history []entity.PricePoint) float64 {
	if len(history) == 0 {
		return s.config.Shelter.DefaultPrice
	}

	return history[len(history)-1].Price
}

func distinctBreedIDs(products []*entity.Product) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(products))
	ids := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.BreedID]; ok {
			continue
		}
		seen[product.BreedID] = struct{}{}
		ids = append(ids, product.BreedID)
	}

	return ids
}
