package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
)

// Placeholder profile created on first start.
var defaultCompanyProfile = domain.CompanyProfile{
	Name:    "My Company",
	Address: "Company Address",
	Phone:   "+95-9-123456789",
	Email:   "info@company.com",
}

type companyService struct {
	BaseService
	store *StateContainer
}

// NewCompanyService creates the company profile service.
func NewCompanyService(store *StateContainer) portssvc.CompanySvcFacade {
	return &companyService{store: store}
}

func (s *companyService) GetCompanyProfile(ctx context.Context) (*domain.CompanyProfile, error) {
	var profile *domain.CompanyProfile
	s.store.Read(func(st *domain.State) {
		if st.CompanyProfile != nil {
			p := *st.CompanyProfile
			profile = &p
		}
	})
	if profile == nil {
		return nil, fmt.Errorf("company profile: %w", apperrors.ErrNotFound)
	}
	return profile, nil
}

// UpdateCompanyProfile creates the profile from the default when none exists yet.
func (s *companyService) UpdateCompanyProfile(ctx context.Context, req dto.UpdateCompanyProfileRequest) (*domain.CompanyProfile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.store.Now()
	newID := s.store.NewID()
	var updated domain.CompanyProfile
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		if st.CompanyProfile == nil {
			p := defaultCompanyProfile
			p.ID = newID
			p.CreatedAt = now
			st.CompanyProfile = &p
		}
		p := st.CompanyProfile
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Logo != nil {
			p.Logo = *req.Logo
		}
		if req.Address != nil {
			p.Address = *req.Address
		}
		if req.Phone != nil {
			p.Phone = *req.Phone
		}
		if req.Email != nil {
			p.Email = *req.Email
		}
		if req.Website != nil {
			p.Website = *req.Website
		}
		if req.TaxID != nil {
			p.TaxID = *req.TaxID
		}
		p.UpdatedAt = now
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Company profile updated", slog.String("name", updated.Name))
	return &updated, nil
}

func (s *companyService) EnsureDefaultProfile(ctx context.Context) error {
	if _, err := s.GetCompanyProfile(ctx); err == nil {
		return nil
	}

	now := s.store.Now()
	newID := s.store.NewID()
	return s.store.Mutate(ctx, func(st *domain.State) error {
		if st.CompanyProfile != nil {
			return nil
		}
		p := defaultCompanyProfile
		p.ID = newID
		p.CreatedAt = now
		p.UpdatedAt = now
		st.CompanyProfile = &p
		return nil
	})
}
