package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shelter/config"
	"shelter/internal/domain/entity"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/domain/repository"
	"shelter/internal/domain/service"
	mockRepo "shelter/internal/mocks/repository"
	mockSvc "shelter/internal/mocks/service"
	mockUC "shelter/internal/mocks/usecase"
	"shelter/internal/upstream"
	"shelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tradingServiceMocks struct {
	billing       *mockSvc.MockBillingService
	catalog       *mockSvc.MockCatalogService
	exchange      *mockSvc.MockExchangeService
	catInfoRepo   *mockRepo.MockCatInfoRepository
	favouriteRepo *mockRepo.MockFavouriteRepository
	authGate      *mockUC.MockAuthGate
}

func newTradingServiceForTest(t *testing.T) (tradingServiceMocks, usecase.TradingUsecase) {
	mocks := tradingServiceMocks{
		billing:       mockSvc.NewMockBillingService(t),
		catalog:       mockSvc.NewMockCatalogService(t),
		exchange:      mockSvc.NewMockExchangeService(t),
		catInfoRepo:   mockRepo.NewMockCatInfoRepository(t),
		favouriteRepo: mockRepo.NewMockFavouriteRepository(t),
		authGate:      mockUC.NewMockAuthGate(t),
	}

	cfg := &config.Config{}
	cfg.Shelter.DefaultPrice = 1000.0
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewTradingService(
		mocks.billing,
		mocks.catalog,
		mocks.exchange,
		mocks.catInfoRepo,
		mocks.favouriteRepo,
		mocks.authGate,
		cfg,
		logger,
	)

	return mocks, svc
}

func TestTradingService_BuyCat_SellsAtLastHistoryPrice(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	catID := uuid.New()
	history := []entity.PricePoint{
		{Date: time.Now().Add(-48 * time.Hour), Price: 500},
		{Date: time.Now().Add(-24 * time.Hour), Price: 1250},
	}
	bill := &entity.Bill{ID: uuid.New(), ProductID: catID, Price: 1250}

	fan := &entity.Favourites{UserID: uuid.New(), CatIDs: []uuid.UUID{catID, uuid.New()}}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, catID).Return(&entity.Product{ID: catID, BreedID: breedID}, nil)
	mocks.exchange.EXPECT().PriceHistory(ctx, breedID).Return(history, nil)
	mocks.billing.EXPECT().SellProduct(ctx, catID, 1250.0).Return(bill, nil)
	mocks.favouriteRepo.EXPECT().FindByCat(ctx, catID).Return([]*entity.Favourites{fan}, nil)
	mocks.favouriteRepo.EXPECT().Upsert(ctx, fan).Return(nil)
	mocks.catInfoRepo.EXPECT().Delete(ctx, catID).Return(nil)

	got, err := svc.BuyCat(ctx, "token", catID)
	require.NoError(t, err)
	assert.Equal(t, bill, got)
	assert.NotContains(t, fan.CatIDs, catID)
}

func TestTradingService_BuyCat_DefaultPriceWhenNoHistory(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	catID := uuid.New()
	bill := &entity.Bill{ID: uuid.New(), ProductID: catID, Price: 1000}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, catID).Return(&entity.Product{ID: catID, BreedID: breedID}, nil)
	mocks.exchange.EXPECT().PriceHistory(ctx, breedID).Return([]entity.PricePoint{}, nil)
	mocks.billing.EXPECT().SellProduct(ctx, catID, 1000.0).Return(bill, nil)
	mocks.favouriteRepo.EXPECT().FindByCat(ctx, catID).Return([]*entity.Favourites{}, nil)
	mocks.catInfoRepo.EXPECT().Delete(ctx, catID).Return(nil)

	got, err := svc.BuyCat(ctx, "token", catID)
	require.NoError(t, err)
	assert.Equal(t, bill, got)
}

func TestTradingService_BuyCat_NotFound(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	catID := uuid.New()

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().
		GetProduct(ctx, catID).
		Return(nil, upstream.Domain(service.ErrProductNotFound))

	_, err := svc.BuyCat(ctx, "token", catID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCatNotFound)
}

func TestTradingService_BuyCat_SoldConcurrently(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	catID := uuid.New()

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, catID).Return(&entity.Product{ID: catID, BreedID: breedID}, nil)
	mocks.exchange.EXPECT().PriceHistory(ctx, breedID).Return([]entity.PricePoint{}, nil)
	mocks.billing.EXPECT().
		SellProduct(ctx, catID, 1000.0).
		Return(nil, upstream.Domain(service.ErrProductNotFound))

	_, err := svc.BuyCat(ctx, "token", catID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCatNotFound)
}

func TestTradingService_BuyCat_FavouriteCleanupFailureDoesNotFailPurchase(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	catID := uuid.New()
	bill := &entity.Bill{ID: uuid.New(), ProductID: catID, Price: 1000}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, catID).Return(&entity.Product{ID: catID, BreedID: breedID}, nil)
	mocks.exchange.EXPECT().PriceHistory(ctx, breedID).Return(nil, nil)
	mocks.billing.EXPECT().SellProduct(ctx, catID, 1000.0).Return(bill, nil)
	mocks.favouriteRepo.EXPECT().FindByCat(ctx, catID).Return(nil, errors.New("connection reset"))
	mocks.catInfoRepo.EXPECT().Delete(ctx, catID).Return(nil)

	got, err := svc.BuyCat(ctx, "token", catID)
	require.NoError(t, err)
	assert.Equal(t, bill, got)
}

func TestTradingService_BuyCat_InfoDeleteFailureSurfaces(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	catID := uuid.New()
	bill := &entity.Bill{ID: uuid.New(), ProductID: catID, Price: 1000}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, catID).Return(&entity.Product{ID: catID, BreedID: breedID}, nil)
	mocks.exchange.EXPECT().PriceHistory(ctx, breedID).Return(nil, nil)
	mocks.billing.EXPECT().SellProduct(ctx, catID, 1000.0).Return(bill, nil)
	mocks.favouriteRepo.EXPECT().FindByCat(ctx, catID).Return([]*entity.Favourites{}, nil)
	// A cat that stays claimed after a sale would remain listable.
	mocks.catInfoRepo.EXPECT().
		Delete(ctx, catID).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to delete cat info"))

	_, err := svc.BuyCat(ctx, "token", catID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to release sold cat info")
}

func TestTradingService_BuyCat_MissingInfoToleratedOnCleanup(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	catID := uuid.New()
	bill := &entity.Bill{ID: uuid.New(), ProductID: catID, Price: 1000}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, catID).Return(&entity.Product{ID: catID, BreedID: breedID}, nil)
	mocks.exchange.EXPECT().PriceHistory(ctx, breedID).Return(nil, nil)
	mocks.billing.EXPECT().SellProduct(ctx, catID, 1000.0).Return(bill, nil)
	mocks.favouriteRepo.EXPECT().FindByCat(ctx, catID).Return([]*entity.Favourites{}, nil)
	mocks.catInfoRepo.EXPECT().Delete(ctx, catID).Return(repository.ErrCatInfoNotFound)

	got, err := svc.BuyCat(ctx, "token", catID)
	require.NoError(t, err)
	assert.Equal(t, bill, got)
}

func TestTradingService_AddCat_Success(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breed := &entity.BreedInfo{ID: uuid.New(), Name: "Siberian"}
	input := &usecase.AddCatInput{Breed: "Siberian", Name: "Mochi", Photo: "http://cats/mochi.png"}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.catalog.EXPECT().FindBreedByName(ctx, "Siberian").Return(breed, nil)

	var registered *entity.Product
	mocks.billing.EXPECT().
		AddProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			registered = product
		}).
		Return(nil)

	var created *entity.CatInfo
	mocks.catInfoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CatInfo")).
		Run(func(_ context.Context, info *entity.CatInfo) {
			created = info
		}).
		Return(nil)

	catID, err := svc.AddCat(ctx, "token", input)
	require.NoError(t, err)
	require.NotNil(t, registered)
	require.NotNil(t, created)
	assert.Equal(t, registered.ID, catID)
	assert.Equal(t, breed.ID, registered.BreedID)
	assert.Equal(t, catID, created.CatID)
	assert.Equal(t, user.ID, created.AddedBy)
	assert.Equal(t, "Mochi", created.Name)
	assert.Equal(t, "http://cats/mochi.png", created.Photo)
}

func TestTradingService_AddCat_UnknownBreed(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	input := &usecase.AddCatInput{Breed: "Gryphon", Name: "Mochi"}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.catalog.EXPECT().
		FindBreedByName(ctx, "Gryphon").
		Return(nil, upstream.Domain(service.ErrBreedNotFound))

	_, err := svc.AddCat(ctx, "token", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBreedUnknown)
}

func TestTradingService_AddCat_BillingUnavailable(t *testing.T) {
	mocks, svc := newTradingServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breed := &entity.BreedInfo{ID: uuid.New(), Name: "Siberian"}
	input := &usecase.AddCatInput{Breed: "Siberian", Name: "Mochi"}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.catalog.EXPECT().FindBreedByName(ctx, "Siberian").Return(breed, nil)
	mocks.billing.EXPECT().
		AddProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(upstream.Connectivity(errors.New("connection refused"))).
		Twice()

	// No Create expectation: the local record is never written without a product.
	_, err := svc.AddCat(ctx, "token", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}
