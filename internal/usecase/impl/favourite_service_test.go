package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shelter/internal/domain/entity"
	domainerrors "shelter/internal/domain/errors"
	"shelter/internal/domain/repository"
	mockRepo "shelter/internal/mocks/repository"
	mockUC "shelter/internal/mocks/usecase"
	"shelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favouriteServiceMocks struct {
	favouriteRepo *mockRepo.MockFavouriteRepository
	catInfoRepo   *mockRepo.MockCatInfoRepository
	cats          *mockUC.MockCatUsecase
	authGate      *mockUC.MockAuthGate
}

func newFavouriteServiceForTest(t *testing.T) (favouriteServiceMocks, usecase.FavouriteUsecase) {
	mocks := favouriteServiceMocks{
		favouriteRepo: mockRepo.NewMockFavouriteRepository(t),
		catInfoRepo:   mockRepo.NewMockCatInfoRepository(t),
		cats:          mockUC.NewMockCatUsecase(t),
		authGate:      mockUC.NewMockAuthGate(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFavouriteService(mocks.favouriteRepo, mocks.catInfoRepo, mocks.cats, mocks.authGate, logger)

	return mocks, svc
}

func TestFavouriteService_AddFavourite_FirstFavouriteCreatesRecord(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	catID := uuid.New()

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.catInfoRepo.EXPECT().Find(ctx, catID).Return(&entity.CatInfo{CatID: catID}, nil)
	mocks.favouriteRepo.EXPECT().FindByUser(ctx, user.ID).Return(nil, repository.ErrFavouritesNotFound)

	var saved *entity.Favourites
	mocks.favouriteRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Favourites")).
		Run(func(_ context.Context, record *entity.Favourites) {
			saved = record
		}).
		Return(nil)

	err := svc.AddFavourite(ctx, "token", catID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, user.ID, saved.UserID)
	assert.Equal(t, []uuid.UUID{catID}, saved.CatIDs)
}

func TestFavouriteService_AddFavourite_DuplicateIsNoOp(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	catID := uuid.New()

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.catInfoRepo.EXPECT().Find(ctx, catID).Return(&entity.CatInfo{CatID: catID}, nil)
	mocks.favouriteRepo.EXPECT().
		FindByUser(ctx, user.ID).
		Return(&entity.Favourites{UserID: user.ID, CatIDs: []uuid.UUID{catID}}, nil)

	// No Upsert expectation: the record did not change.
	err := svc.AddFavourite(ctx, "token", catID)
	require.NoError(t, err)
}

func TestFavouriteService_AddFavourite_UnknownCatIsNoOp(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	catID := uuid.New()

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.catInfoRepo.EXPECT().Find(ctx, catID).Return(nil, repository.ErrCatInfoNotFound)

	err := svc.AddFavourite(ctx, "token", catID)
	require.NoError(t, err)
}

func TestFavouriteService_AddFavourite_InvalidSession(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()

	mocks.authGate.EXPECT().
		Authenticate(ctx, "bad-token").
		Return(nil, domainerrors.ErrSessionInvalid.WrapMessage("session rejected by authorization service"))

	err := svc.AddFavourite(ctx, "bad-token", uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestFavouriteService_ListFavourites_EmptyWhenNoRecord(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.favouriteRepo.EXPECT().FindByUser(ctx, user.ID).Return(nil, repository.ErrFavouritesNotFound)

	cats, err := svc.ListFavourites(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestFavouriteService_ListFavourites_SkipsSoldCats(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	keptID := uuid.New()
	soldID := uuid.New()
	record := &entity.Favourites{UserID: user.ID, CatIDs: []uuid.UUID{soldID, keptID}}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.favouriteRepo.EXPECT().FindByUser(ctx, user.ID).Return(record, nil)
	mocks.catInfoRepo.EXPECT().
		FindByCats(ctx, []uuid.UUID{soldID, keptID}).
		Return([]*entity.CatInfo{{CatID: soldID, Name: "Tora"}, {CatID: keptID, Name: "Mochi"}}, nil)
	mocks.cats.EXPECT().
		CatByID(ctx, soldID).
		Return(nil, domainerrors.ErrCatNotFound.WrapMessage("billing does not know this cat"))
	mocks.cats.EXPECT().
		CatByID(ctx, keptID).
		Return(&entity.Cat{ID: keptID, Name: "Mochi"}, nil)

	cats, err := svc.ListFavourites(ctx, "token")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, keptID, cats[0].ID)
	// The stale id stays in the record; cleanup belongs to the purchase flow.
	assert.Equal(t, []uuid.UUID{soldID, keptID}, record.CatIDs)
}

func TestFavouriteService_ListFavourites_SkipsUnclaimedCats(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	keptID := uuid.New()
	releasedID := uuid.New()
	record := &entity.Favourites{UserID: user.ID, CatIDs: []uuid.UUID{keptID, releasedID}}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.favouriteRepo.EXPECT().FindByUser(ctx, user.ID).Return(record, nil)
	// The released cat still has a billing product, but its local info is gone.
	mocks.catInfoRepo.EXPECT().
		FindByCats(ctx, []uuid.UUID{keptID, releasedID}).
		Return([]*entity.CatInfo{{CatID: keptID, Name: "Mochi"}}, nil)
	mocks.cats.EXPECT().
		CatByID(ctx, keptID).
		Return(&entity.Cat{ID: keptID, Name: "Mochi"}, nil)

	cats, err := svc.ListFavourites(ctx, "token")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, keptID, cats[0].ID)
	assert.Equal(t, []uuid.UUID{keptID, releasedID}, record.CatIDs)
}

func TestFavouriteService_RemoveFavourite_Success(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}
	catID := uuid.New()
	otherID := uuid.New()

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.favouriteRepo.EXPECT().
		FindByUser(ctx, user.ID).
		Return(&entity.Favourites{UserID: user.ID, CatIDs: []uuid.UUID{catID, otherID}}, nil)

	var saved *entity.Favourites
	mocks.favouriteRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Favourites")).
		Run(func(_ context.Context, record *entity.Favourites) {
			saved = record
		}).
		Return(nil)

	err := svc.RemoveFavourite(ctx, "token", catID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, []uuid.UUID{otherID}, saved.CatIDs)
}

func TestFavouriteService_RemoveFavourite_AbsentCatIsNoOp(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.favouriteRepo.EXPECT().
		FindByUser(ctx, user.ID).
		Return(&entity.Favourites{UserID: user.ID, CatIDs: []uuid.UUID{uuid.New()}}, nil)

	err := svc.RemoveFavourite(ctx, "token", uuid.New())
	require.NoError(t, err)
}

func TestFavouriteService_RemoveFavourite_NoRecordIsNoOp(t *testing.T) {
	mocks, svc := newFavouriteServiceForTest(t)

	ctx := context.Background()
	user := &entity.AuthenticatedUser{ID: uuid.New()}

	mocks.authGate.EXPECT().Authenticate(ctx, "token").Return(user, nil)
	mocks.favouriteRepo.EXPECT().FindByUser(ctx, user.ID).Return(nil, repository.ErrFavouritesNotFound)

	err := svc.RemoveFavourite(ctx, "token", uuid.New())
	require.NoError(t, err)
}
