package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale or payment was settled.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodKBZPay PaymentMethod = "kbz_pay"
)

// IsValid reports whether m is a known sale payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCredit, PaymentMethodKBZPay:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a sale.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPending PaymentStatus = "pending"
)

// Sale is a single transaction line for one product.
type Sale struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	KBZPayPhone   string          `json:"kbzPayPhone,omitempty"`
	SaleDate      time.Time       `json:"saleDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	IsPrinted     bool            `json:"isPrinted"`
}

// OutstandingAmount is what remains unpaid on the sale.
func (s Sale) OutstandingAmount() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaidAmount)
}
