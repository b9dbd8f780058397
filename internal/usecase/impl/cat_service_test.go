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

type catServiceMocks struct {
	billing     *mockSvc.MockBillingService
	catalog     *mockSvc.MockCatalogService
	exchange    *mockSvc.MockExchangeService
	catInfoRepo *mockRepo.MockCatInfoRepository
	qrcode      *mockSvc.MockQRCodeService
	authGate    *mockUC.MockAuthGate
}

func newCatServiceForTest(t *testing.T) (catServiceMocks, usecase.CatUsecase) {
	mocks := catServiceMocks{
		billing:     mockSvc.NewMockBillingService(t),
		catalog:     mockSvc.NewMockCatalogService(t),
		exchange:    mockSvc.NewMockExchangeService(t),
		catInfoRepo: mockRepo.NewMockCatInfoRepository(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
		authGate:    mockUC.NewMockAuthGate(t),
	}

	cfg := &config.Config{}
	cfg.Shelter.DefaultPrice = 1000.0
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatService(
		mocks.billing,
		mocks.catalog,
		mocks.exchange,
		mocks.catInfoRepo,
		mocks.qrcode,
		mocks.authGate,
		cfg,
		logger,
	)

	return mocks, svc
}

func TestCatService_ListCats_FiltersUnclaimedCats(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()

	products := make([]*entity.Product, 0, 5)
	for range 5 {
		products = append(products, &entity.Product{ID: uuid.New(), BreedID: breedID})
	}

	// Only the first and the fourth cat have local info records.
	infos := []*entity.CatInfo{
		{CatID: products[0].ID, AddedBy: user.ID, Name: "Mochi"},
		{CatID: products[3].ID, AddedBy: user.ID, Name: "Tora"},
	}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().ListProducts(ctx, 0, 10).Return(products, nil)
	mocks.catalog.EXPECT().
		FindBreedsByIDs(mock.Anything, []uuid.UUID{breedID}).
		Return([]*entity.BreedInfo{{ID: breedID, Name: "Siberian", Photo: "http://cats/siberian.png"}}, nil)
	mocks.exchange.EXPECT().
		PriceHistories(mock.Anything, []uuid.UUID{breedID}).
		Return(map[uuid.UUID][]entity.PricePoint{}, nil)
	mocks.catInfoRepo.EXPECT().FindByCats(ctx, mock.Anything).Return(infos, nil)

	cats, err := svc.ListCats(ctx, "token", 0, 10)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, products[0].ID, cats[0].ID)
	assert.Equal(t, products[3].ID, cats[1].ID)
	assert.Equal(t, "Mochi", cats[0].Name)
	assert.Equal(t, "Siberian", cats[0].Breed)
}

func TestCatService_ListCats_PriceFromHistoryOrDefault(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	tradedBreed := uuid.New()
	freshBreed := uuid.New()

	products := []*entity.Product{
		{ID: uuid.New(), BreedID: tradedBreed},
		{ID: uuid.New(), BreedID: freshBreed},
	}
	infos := []*entity.CatInfo{
		{CatID: products[0].ID, Name: "Mochi"},
		{CatID: products[1].ID, Name: "Tora"},
	}
	history := []entity.PricePoint{
		{Date: time.Now().Add(-48 * time.Hour), Price: 500},
		{Date: time.Now().Add(-24 * time.Hour), Price: 750},
	}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().ListProducts(ctx, 0, 10).Return(products, nil)
	mocks.catalog.EXPECT().
		FindBreedsByIDs(mock.Anything, mock.Anything).
		Return([]*entity.BreedInfo{}, nil)
	mocks.exchange.EXPECT().
		PriceHistories(mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]entity.PricePoint{tradedBreed: history}, nil)
	mocks.catInfoRepo.EXPECT().FindByCats(ctx, mock.Anything).Return(infos, nil)

	cats, err := svc.ListCats(ctx, "token", 0, 10)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, 750.0, cats[0].Price)
	assert.Equal(t, history, cats[0].PriceHistory)
	assert.Equal(t, 1000.0, cats[1].Price)
	assert.Empty(t, cats[1].PriceHistory)
}

func TestCatService_ListCats_CatalogRejectionDegrades(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	product := &entity.Product{ID: uuid.New(), BreedID: breedID}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().ListProducts(ctx, 0, 10).Return([]*entity.Product{product}, nil)
	mocks.catalog.EXPECT().
		FindBreedsByIDs(mock.Anything, mock.Anything).
		Return(nil, upstream.Domain(service.ErrBreedQueryRejected))
	mocks.exchange.EXPECT().
		PriceHistories(mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]entity.PricePoint{}, nil)
	mocks.catInfoRepo.EXPECT().
		FindByCats(ctx, mock.Anything).
		Return([]*entity.CatInfo{{CatID: product.ID, Name: "Mochi"}}, nil)

	cats, err := svc.ListCats(ctx, "token", 0, 10)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Empty(t, cats[0].Breed)
	assert.Equal(t, "Mochi", cats[0].Name)
}

func TestCatService_ListCats_ExchangeUnavailable(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	product := &entity.Product{ID: uuid.New(), BreedID: uuid.New()}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().ListProducts(ctx, 0, 10).Return([]*entity.Product{product}, nil)
	mocks.catalog.EXPECT().
		FindBreedsByIDs(mock.Anything, mock.Anything).
		Return([]*entity.BreedInfo{}, nil).
		Maybe()
	mocks.exchange.EXPECT().
		PriceHistories(mock.Anything, mock.Anything).
		Return(nil, upstream.Connectivity(errors.New("connection refused")))

	_, err := svc.ListCats(ctx, "token", 0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}

func TestCatService_GetCat_Success(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	breedID := uuid.New()
	product := &entity.Product{ID: uuid.New(), BreedID: breedID}
	history := []entity.PricePoint{{Date: time.Now(), Price: 320}}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, product.ID).Return(product, nil)
	mocks.catalog.EXPECT().
		FindBreedsByIDs(mock.Anything, []uuid.UUID{breedID}).
		Return([]*entity.BreedInfo{{ID: breedID, Name: "Ragdoll"}}, nil)
	mocks.exchange.EXPECT().
		PriceHistories(mock.Anything, []uuid.UUID{breedID}).
		Return(map[uuid.UUID][]entity.PricePoint{breedID: history}, nil)
	mocks.catInfoRepo.EXPECT().
		Find(ctx, product.ID).
		Return(&entity.CatInfo{CatID: product.ID, AddedBy: user.ID, Name: "Mochi"}, nil)

	cat, err := svc.GetCat(ctx, "token", product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, cat.ID)
	assert.Equal(t, "Ragdoll", cat.Breed)
	assert.Equal(t, "Mochi", cat.Name)
	assert.Equal(t, 320.0, cat.Price)
}

func TestCatService_GetCat_NotFound(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	catID := uuid.New()

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().
		GetProduct(ctx, catID).
		Return(nil, upstream.Domain(service.ErrProductNotFound))

	_, err := svc.GetCat(ctx, "token", catID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCatNotFound)
}

func TestCatService_CatByID_UnclaimedCatStillResolves(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), BreedID: uuid.New()}

	mocks.billing.EXPECT().GetProduct(ctx, product.ID).Return(product, nil)
	mocks.catalog.EXPECT().
		FindBreedsByIDs(mock.Anything, mock.Anything).
		Return([]*entity.BreedInfo{}, nil)
	mocks.exchange.EXPECT().
		PriceHistories(mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]entity.PricePoint{}, nil)
	mocks.catInfoRepo.EXPECT().
		Find(ctx, product.ID).
		Return(nil, repository.ErrCatInfoNotFound)

	cat, err := svc.CatByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, cat.ID)
	assert.Empty(t, cat.Name)
	assert.Equal(t, uuid.Nil, cat.AddedBy)
}

func TestCatService_CatShareQR(t *testing.T) {
	mocks, svc := newCatServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	product := &entity.Product{ID: uuid.New(), BreedID: uuid.New()}
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.billing.EXPECT().GetProduct(ctx, product.ID).Return(product, nil)
	mocks.catalog.EXPECT().
		FindBreedsByIDs(mock.Anything, mock.Anything).
		Return([]*entity.BreedInfo{}, nil)
	mocks.exchange.EXPECT().
		PriceHistories(mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]entity.PricePoint{}, nil)
	mocks.catInfoRepo.EXPECT().Find(ctx, product.ID).Return(nil, repository.ErrCatInfoNotFound)
	mocks.qrcode.EXPECT().GenerateCatQR(product.ID).Return(pngBytes, nil)

	qr, err := svc.CatShareQR(ctx, "token", product.ID)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, qr)
}
