package services

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CustomerSvcFacade combines all customer operations
type CustomerSvcFacade interface {
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error

	// AdjustCustomerBalance adds a signed amount to the customer's credit balance.
	AdjustCustomerBalance(ctx context.Context, customerID string, amount decimal.Decimal) (*domain.Customer, error)
}

// SupplierSvcFacade combines all supplier operations
type SupplierSvcFacade interface {
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier. It fails with apperrors.ErrSupplierInUse
	// while any product references the supplier.
	DeleteSupplier(ctx context.Context, supplierID string) error
}
