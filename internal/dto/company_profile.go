package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// UpdateCompanyProfileRequest defines the data allowed for updating the company profile.
type UpdateCompanyProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Logo    *string `json:"logo"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Phone   *string `json:"phone" binding:"omitempty,max=32"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Website *string `json:"website" binding:"omitempty,max=200"`
	TaxID   *string `json:"taxId" binding:"omitempty,max=64"`
}

// CompanyProfileResponse defines the data returned for the company profile.
type CompanyProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo,omitempty"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Website   string    `json:"website,omitempty"`
	TaxID     string    `json:"taxId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCompanyProfileResponse converts a domain.CompanyProfile to its DTO
func ToCompanyProfileResponse(p *domain.CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Logo:      p.Logo,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		Website:   p.Website,
		TaxID:     p.TaxID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
