package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/core/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StateContainerTestSuite struct {
	suite.Suite
	mockRepo *MockStateRepository
	store    *services.StateContainer
}

func (suite *StateContainerTestSuite) SetupTest() {
	suite.mockRepo = new(MockStateRepository)
	suite.store = services.NewStateContainer(suite.mockRepo, services.WithIDGenerator(sequentialIDs()))
}

func (suite *StateContainerTestSuite) TestLoad_FirstRunStartsEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("LoadState", ctx).Return(nil, apperrors.ErrNotFound).Once()

	suite.Require().NoError(suite.store.Load(ctx))

	snapshot := suite.store.Snapshot()
	suite.Empty(snapshot.Products)
	suite.NotNil(snapshot.Products)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StateContainerTestSuite) TestLoad_RehydratesPersistedState() {
	ctx := context.Background()
	persisted := &domain.State{Categories: []domain.Category{{ID: "c1", Name: "Books"}}}
	suite.mockRepo.On("LoadState", ctx).Return(persisted, nil).Once()

	suite.Require().NoError(suite.store.Load(ctx))

	snapshot := suite.store.Snapshot()
	suite.Require().Len(snapshot.Categories, 1)
	suite.Equal("Books", snapshot.Categories[0].Name)
	suite.NotNil(snapshot.Sales, "missing collections are normalised")
}

func (suite *StateContainerTestSuite) TestLoad_PropagatesRepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("LoadState", ctx).Return(nil, apperrors.ErrUnsupportedSchema).Once()

	err := suite.store.Load(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedSchema)
}

func (suite *StateContainerTestSuite) TestMutate_FunctionErrorSkipsSave() {
	ctx := context.Background()

	err := suite.store.Mutate(ctx, func(st *domain.State) error {
		st.Categories = append(st.Categories, domain.Category{ID: "c1"})
		return apperrors.ErrValidation
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(suite.store.Snapshot().Categories)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveState", mock.Anything, mock.Anything)
}

func (suite *StateContainerTestSuite) TestMutate_SaveFailureLeavesStateUnchanged() {
	ctx := context.Background()
	suite.mockRepo.On("SaveState", ctx, mock.AnythingOfType("*domain.State")).Return(assert.AnError).Once()

	err := suite.store.Mutate(ctx, func(st *domain.State) error {
		st.Categories = append(st.Categories, domain.Category{ID: "c1"})
		return nil
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Empty(suite.store.Snapshot().Categories)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StateContainerTestSuite) TestMutate_SuccessPublishesState() {
	ctx := context.Background()
	suite.mockRepo.On("SaveState", ctx, mock.MatchedBy(func(st *domain.State) bool {
		return len(st.Categories) == 1
	})).Return(nil).Once()

	err := suite.store.Mutate(ctx, func(st *domain.State) error {
		st.Categories = append(st.Categories, domain.Category{ID: "c1"})
		return nil
	})

	suite.Require().NoError(err)
	suite.Len(suite.store.Snapshot().Categories, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StateContainerTestSuite) TestCreateSale_SaveFailureHasNoSideEffects() {
	ctx := context.Background()
	initial := domain.NewState()
	initial.Categories = append(initial.Categories, domain.Category{ID: "c1"})
	initial.Brands = append(initial.Brands, domain.Brand{ID: "b1"})
	initial.Products = append(initial.Products, domain.Product{
		ID: "p1", Price: dec(1000), SKU: "P1", Stock: 10, CategoryID: "c1", BrandID: "b1",
	})
	suite.mockRepo.On("LoadState", ctx).Return(initial, nil).Once()
	suite.Require().NoError(suite.store.Load(ctx))
	suite.mockRepo.On("SaveState", ctx, mock.Anything).Return(assert.AnError).Once()

	sales := services.NewSaleService(suite.store)
	_, err := sales.CreateSale(ctx, dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 2, PaymentMethod: "credit",
	})

	suite.Require().Error(err)
	snapshot := suite.store.Snapshot()
	suite.Equal(10, snapshot.Products[0].Stock)
	suite.Empty(snapshot.Sales)
	suite.Empty(snapshot.StockMovements)
	suite.Empty(snapshot.CreditDebitRecords)
}

func (suite *StateContainerTestSuite) TestRead_SeesPublishedState() {
	ctx := context.Background()
	suite.mockRepo.On("SaveState", ctx, mock.Anything).Return(nil).Once()
	suite.Require().NoError(suite.store.Mutate(ctx, func(st *domain.State) error {
		st.Categories = append(st.Categories, domain.Category{ID: "cat-1", Name: "Phones"})
		return nil
	}))

	var names []string
	suite.store.Read(func(st *domain.State) {
		for _, c := range st.Categories {
			names = append(names, c.Name)
		}
	})
	suite.Equal([]string{"Phones"}, names)
}

func TestStateContainerTestSuite(t *testing.T) {
	suite.Run(t, new(StateContainerTestSuite))
}

func TestStateContainer_SnapshotIsIsolated(t *testing.T) {
	store := services.NewStateContainer(nil)
	snapshot := store.Snapshot()
	snapshot.Categories = append(snapshot.Categories, domain.Category{ID: "x"})

	var count int
	require.NoError(t, store.View(func(st *domain.State) error {
		count = len(st.Categories)
		return nil
	}))
	assert.Zero(t, count)
}

func TestStateContainer_ViewReturnsCallbackError(t *testing.T) {
	store := services.NewStateContainer(nil)
	err := store.View(func(st *domain.State) error {
		return apperrors.ErrNotFound
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStateContainer_NowIsUTC(t *testing.T) {
	store := services.NewStateContainer(nil, services.WithClock(func() time.Time {
		return fixedNow.In(time.FixedZone("MMT", 6*3600+1800))
	}))
	assert.Equal(t, time.UTC, store.Now().Location())
	assert.True(t, fixedNow.Equal(store.Now()))
}
