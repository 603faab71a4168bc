package services

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
)

// CategorySvcFacade combines all category operations
type CategorySvcFacade interface {
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// BrandSvcFacade combines all brand operations
type BrandSvcFacade interface {
	GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, req dto.CreateBrandRequest) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, brandID string, req dto.UpdateBrandRequest) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error
}

// AttributeSvcFacade combines all attribute operations
type AttributeSvcFacade interface {
	GetAttributeByID(ctx context.Context, attributeID string) (*domain.Attribute, error)
	ListAttributes(ctx context.Context) ([]domain.Attribute, error)
	CreateAttribute(ctx context.Context, req dto.CreateAttributeRequest) (*domain.Attribute, error)
	UpdateAttribute(ctx context.Context, attributeID string, req dto.UpdateAttributeRequest) (*domain.Attribute, error)
	DeleteAttribute(ctx context.Context, attributeID string) error
}
