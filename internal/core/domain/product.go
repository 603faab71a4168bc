package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stock keeping unit offered for sale.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode,omitempty"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	CategoryID  string          `json:"categoryId"`
	BrandID     string          `json:"brandId"`
	SupplierID  string          `json:"supplierId,omitempty"`
	Attributes  map[string]any  `json:"attributes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IsLowStock reports whether stock has fallen to or below the minimum threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// IsOutOfStock reports whether the product has nothing left to sell.
func (p Product) IsOutOfStock() bool {
	return p.Stock <= 0
}

// StockValue is the stock valued at cost.
func (p Product) StockValue() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Stock)))
}
