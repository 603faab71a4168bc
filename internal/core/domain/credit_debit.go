package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStatus is the settlement state of a credit/debit record.
// Transitions run pending -> partial -> cleared; nothing leaves cleared.
type RecordStatus string

const (
	RecordStatusPending RecordStatus = "pending"
	RecordStatusPartial RecordStatus = "partial"
	RecordStatusCleared RecordStatus = "cleared"
)

// IsValid reports whether s is a known record status.
func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusPending, RecordStatusPartial, RecordStatusCleared:
		return true
	}
	return false
}

// Payment is one amount applied against a credit/debit record.
type Payment struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	KBZPayPhone   string          `json:"kbzPayPhone,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CreditDebitRecord tracks the outstanding balance of an under-paid sale.
// Payments is append-only.
type CreditDebitRecord struct {
	ID              string          `json:"id"`
	SaleID          string          `json:"saleId"`
	CustomerID      string          `json:"customerId,omitempty"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Status          RecordStatus    `json:"status"`
	Payments        []Payment       `json:"payments"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IsCleared reports whether the record has been settled.
func (r CreditDebitRecord) IsCleared() bool {
	return r.Status == RecordStatusCleared
}

// IsOverdue reports whether the record is unsettled past its due date.
func (r CreditDebitRecord) IsOverdue(now time.Time) bool {
	return r.DueDate != nil && !r.IsCleared() && now.After(*r.DueDate)
}
