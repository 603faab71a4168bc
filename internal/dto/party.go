package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a new customer.
// New customers always start with a zero credit balance.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"max=32"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address" binding:"max=500"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// The credit balance is not editable here.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=32"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// AdjustBalanceRequest carries a signed amount added to a customer's credit balance.
type AdjustBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreateSupplierRequest defines the data needed to create a new supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	Phone         string `json:"phone" binding:"max=32"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address" binding:"max=500"`
	ContactPerson string `json:"contactPerson" binding:"max=200"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone         *string `json:"phone" binding:"omitempty,max=32"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	ContactPerson *string `json:"contactPerson" binding:"omitempty,max=200"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreditBalance: c.CreditBalance,
		CreatedAt:     c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain.Customer to a slice of CustomerResponse DTOs
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		ContactPerson: s.ContactPerson,
		CreatedAt:     s.CreatedAt,
	}
}

// ToSupplierResponses converts a slice of domain.Supplier to a slice of SupplierResponse DTOs
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}
