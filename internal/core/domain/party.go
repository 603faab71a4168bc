package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer buys products. CreditBalance is positive when the customer owes the
// business and negative when the business owes the customer.
type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Supplier provides products.
type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
