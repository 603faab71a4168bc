package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/adapters/storage/memory"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/core/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("id-%04d", n.Add(1))
	}
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "test-issuer",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// ledgerSuite wires every service to one container backed by the memory store.
type ledgerSuite struct {
	suite.Suite
	ctx   context.Context
	repo  *memory.StateRepository
	store *services.StateContainer
	svc   *portssvc.ServiceContainer
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewStateRepository()
	s.store = services.NewStateContainer(s.repo,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(sequentialIDs()))
	s.Require().NoError(s.store.Load(s.ctx))
	s.svc = services.NewServiceContainer(testConfig(), s.store)
}

// seedProduct creates a category, a brand and a product with the given stock and price.
func (s *ledgerSuite) seedProduct(stock int, price int64) *domain.Product {
	cat, err := s.svc.Category.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	s.Require().NoError(err)
	brand, err := s.svc.Brand.CreateBrand(s.ctx, dto.CreateBrandRequest{Name: "Acme"})
	s.Require().NoError(err)

	product, err := s.svc.Product.CreateProduct(s.ctx, dto.CreateProductRequest{
		Name:       "Phone",
		Price:      dec(price),
		Cost:       dec(price * 6 / 10),
		SKU:        fmt.Sprintf("SKU-%d-%d", stock, price),
		Stock:      stock,
		MinStock:   5,
		CategoryID: cat.ID,
		BrandID:    brand.ID,
	})
	s.Require().NoError(err)
	return product
}

func (s *ledgerSuite) seedCustomer(name string) *domain.Customer {
	customer, err := s.svc.Customer.CreateCustomer(s.ctx, dto.CreateCustomerRequest{Name: name, Phone: "09-111"})
	s.Require().NoError(err)
	return customer
}

// --- Mock StateRepository ---
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) LoadState(ctx context.Context) (*domain.State, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockStateRepository) SaveState(ctx context.Context, state *domain.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

var _ portsrepo.StateRepositoryFacade = (*MockStateRepository)(nil)
