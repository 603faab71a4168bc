package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the data needed to record a sale.
// UnitPrice defaults to the product's price. CustomerName defaults to the
// referenced customer's name, or to a walk-in label when no customer is given.
type CreateSaleRequest struct {
	ProductID     string           `json:"productId" binding:"required"`
	CustomerID    string           `json:"customerId"`
	CustomerName  string           `json:"customerName" binding:"max=200"`
	CustomerPhone string           `json:"customerPhone" binding:"max=32"`
	Quantity      int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	PaidAmount    decimal.Decimal  `json:"paidAmount"`
	PaymentMethod string           `json:"paymentMethod" binding:"required,oneof=cash credit kbz_pay"`
	KBZPayPhone   string           `json:"kbzPayPhone" binding:"required_if=PaymentMethod kbz_pay,max=32"`
	SaleDate      *time.Time       `json:"saleDate"`
	DueDate       *time.Time       `json:"dueDate"`
}

// UpdateSaleRequest defines the sale fields that may be corrected after the fact.
// Amounts and quantities are fixed once recorded.
type UpdateSaleRequest struct {
	CustomerName  *string    `json:"customerName" binding:"omitempty,min=1,max=200"`
	CustomerPhone *string    `json:"customerPhone" binding:"omitempty,max=32"`
	SaleDate      *time.Time `json:"saleDate"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	From       *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To         *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	CustomerID string     `form:"customerId"`
	ProductID  string     `form:"productId"`
	Status     string     `form:"status" binding:"omitempty,oneof=paid partial pending"`
	Limit      int        `form:"limit,default=20" binding:"omitempty,min=1,max=200"`
	NextToken  *string    `form:"nextToken"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	ID                string               `json:"id"`
	ProductID         string               `json:"productId"`
	CustomerID        string               `json:"customerId,omitempty"`
	CustomerName      string               `json:"customerName"`
	CustomerPhone     string               `json:"customerPhone,omitempty"`
	Quantity          int                  `json:"quantity"`
	UnitPrice         decimal.Decimal      `json:"unitPrice"`
	TotalAmount       decimal.Decimal      `json:"totalAmount"`
	PaidAmount        decimal.Decimal      `json:"paidAmount"`
	OutstandingAmount decimal.Decimal      `json:"outstandingAmount"`
	PaymentMethod     domain.PaymentMethod `json:"paymentMethod"`
	PaymentStatus     domain.PaymentStatus `json:"paymentStatus"`
	KBZPayPhone       string               `json:"kbzPayPhone,omitempty"`
	SaleDate          time.Time            `json:"saleDate"`
	CreatedAt         time.Time            `json:"createdAt"`
	IsPrinted         bool                 `json:"isPrinted"`
}

// ListSalesResponse wraps a page of sales.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		ID:                s.ID,
		ProductID:         s.ProductID,
		CustomerID:        s.CustomerID,
		CustomerName:      s.CustomerName,
		CustomerPhone:     s.CustomerPhone,
		Quantity:          s.Quantity,
		UnitPrice:         s.UnitPrice,
		TotalAmount:       s.TotalAmount,
		PaidAmount:        s.PaidAmount,
		OutstandingAmount: s.OutstandingAmount(),
		PaymentMethod:     s.PaymentMethod,
		PaymentStatus:     s.PaymentStatus,
		KBZPayPhone:       s.KBZPayPhone,
		SaleDate:          s.SaleDate,
		CreatedAt:         s.CreatedAt,
		IsPrinted:         s.IsPrinted,
	}
}

// ToSaleResponses converts a slice of domain.Sale to a slice of SaleResponse DTOs
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = ToSaleResponse(&s)
	}
	return res
}
