package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest registers a credit/debit record for an existing sale.
type CreateRecordRequest struct {
	SaleID  string     `json:"saleId" binding:"required"`
	DueDate *time.Time `json:"dueDate"`
}

// AddPaymentRequest defines a payment applied against a credit/debit record.
type AddPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash kbz_pay"`
	KBZPayPhone   string          `json:"kbzPayPhone" binding:"required_if=PaymentMethod kbz_pay,max=32"`
	Notes         string          `json:"notes" binding:"max=500"`
	PaymentDate   *time.Time      `json:"paymentDate"`
}

// ListRecordsParams defines query parameters for listing credit/debit records.
type ListRecordsParams struct {
	Status     string `form:"status" binding:"omitempty,oneof=pending partial cleared"`
	CustomerID string `form:"customerId"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID            string               `json:"id"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   time.Time            `json:"paymentDate"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	KBZPayPhone   string               `json:"kbzPayPhone,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// RecordResponse defines the data returned for a credit/debit record.
type RecordResponse struct {
	ID              string              `json:"id"`
	SaleID          string              `json:"saleId"`
	CustomerID      string              `json:"customerId,omitempty"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone,omitempty"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	PaidAmount      decimal.Decimal     `json:"paidAmount"`
	RemainingAmount decimal.Decimal     `json:"remainingAmount"`
	DueDate         *time.Time          `json:"dueDate,omitempty"`
	Status          domain.RecordStatus `json:"status"`
	Payments        []PaymentResponse   `json:"payments"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// ToRecordResponse converts a domain.CreditDebitRecord to RecordResponse DTO
func ToRecordResponse(r *domain.CreditDebitRecord) RecordResponse {
	payments := make([]PaymentResponse, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = PaymentResponse{
			ID:            p.ID,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
			PaymentMethod: p.PaymentMethod,
			KBZPayPhone:   p.KBZPayPhone,
			Notes:         p.Notes,
		}
	}
	return RecordResponse{
		ID:              r.ID,
		SaleID:          r.SaleID,
		CustomerID:      r.CustomerID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		TotalAmount:     r.TotalAmount,
		PaidAmount:      r.PaidAmount,
		RemainingAmount: r.RemainingAmount,
		DueDate:         r.DueDate,
		Status:          r.Status,
		Payments:        payments,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToRecordResponses converts a slice of records to a slice of RecordResponse DTOs
func ToRecordResponses(records []domain.CreditDebitRecord) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i, r := range records {
		res[i] = ToRecordResponse(&r)
	}
	return res
}
