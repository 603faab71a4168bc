package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=1000"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	SKU         string          `json:"sku" binding:"required,max=64"`
	Barcode     string          `json:"barcode" binding:"max=64"`
	Stock       int             `json:"stock" binding:"gte=0"`
	MinStock    int             `json:"minStock" binding:"gte=0"`
	CategoryID  string          `json:"categoryId" binding:"required"`
	BrandID     string          `json:"brandId" binding:"required"`
	SupplierID  string          `json:"supplierId"`
	Attributes  map[string]any  `json:"attributes"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Stock is changed through stock adjustments only.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	SKU         *string          `json:"sku" binding:"omitempty,min=1,max=64"`
	Barcode     *string          `json:"barcode" binding:"omitempty,max=64"`
	MinStock    *int             `json:"minStock" binding:"omitempty,gte=0"`
	CategoryID  *string          `json:"categoryId" binding:"omitempty,min=1"`
	BrandID     *string          `json:"brandId" binding:"omitempty,min=1"`
	SupplierID  *string          `json:"supplierId"`
	Attributes  map[string]any   `json:"attributes"`
}

// UpdateStockRequest carries a signed stock delta.
type UpdateStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	CategoryID string `form:"categoryId"`
	BrandID    string `form:"brandId"`
	SupplierID string `form:"supplierId"`
	Search     string `form:"search"`
	LowStock   bool   `form:"lowStock"`
	OutOfStock bool   `form:"outOfStock"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode,omitempty"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	LowStock    bool            `json:"lowStock"`
	OutOfStock  bool            `json:"outOfStock"`
	CategoryID  string          `json:"categoryId"`
	BrandID     string          `json:"brandId"`
	SupplierID  string          `json:"supplierId,omitempty"`
	Attributes  map[string]any  `json:"attributes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// StockMovementResponse defines the data returned for a stock movement.
type StockMovementResponse struct {
	ID        string              `json:"id"`
	ProductID string              `json:"productId"`
	Type      domain.MovementType `json:"type"`
	Quantity  int                 `json:"quantity"`
	Reason    string              `json:"reason"`
	Reference string              `json:"reference,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	CreatedBy string              `json:"createdBy"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	attrs := p.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
		OutOfStock:  p.IsOutOfStock(),
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		SupplierID:  p.SupplierID,
		Attributes:  attrs,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain.Product to a slice of ProductResponse DTOs
func ToProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}

// ToStockMovementResponses converts stock movements to their DTOs
func ToStockMovementResponses(movements []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(movements))
	for i, m := range movements {
		res[i] = StockMovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			Reference: m.Reference,
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
		}
	}
	return res
}
