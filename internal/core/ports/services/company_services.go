package services

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
)

// CompanySvcFacade defines operations on the company profile
type CompanySvcFacade interface {
	// GetCompanyProfile returns the profile, or apperrors.ErrNotFound before one exists.
	GetCompanyProfile(ctx context.Context) (*domain.CompanyProfile, error)

	// UpdateCompanyProfile merges the provided fields and stamps the update time.
	UpdateCompanyProfile(ctx context.Context, req dto.UpdateCompanyProfileRequest) (*domain.CompanyProfile, error)

	// EnsureDefaultProfile creates the placeholder profile when none exists.
	EnsureDefaultProfile(ctx context.Context) error
}
