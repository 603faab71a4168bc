package services

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
)

// ProductReaderSvc defines read operations for products
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products matching the given filters.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for products
type ProductWriterSvc interface {
	// CreateProduct adds a product. The SKU must be unique.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct merges the provided fields into an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID string) error
}

// StockSvc defines stock adjustment operations
type StockSvc interface {
	// UpdateStock adds a signed delta to a product's stock and records a stock movement.
	UpdateStock(ctx context.Context, productID string, delta int) (*domain.Product, error)

	// ListStockMovements lists stock movements, optionally for one product.
	ListStockMovements(ctx context.Context, productID string) ([]domain.StockMovement, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
	StockSvc
}
