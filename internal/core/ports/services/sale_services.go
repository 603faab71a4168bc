package services

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	// GetSaleByID retrieves a sale by ID.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a page of sales, newest first.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}

// SaleWriterSvc defines write operations for sales
type SaleWriterSvc interface {
	// CreateSale records a sale: it decrements stock, records the stock movement,
	// charges the unpaid part to the customer and opens a credit/debit record
	// when needed. Either every effect applies or none does.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// UpdateSale corrects the descriptive fields of a sale.
	UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error)

	// DeleteSale removes a sale without touching stock, balances or records.
	DeleteSale(ctx context.Context, saleID string) error

	// MarkSaleAsPrinted flags the sale's receipt as printed.
	MarkSaleAsPrinted(ctx context.Context, saleID string) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
