package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
)

// catalogService implements the category, brand and attribute facades.
type catalogService struct {
	BaseService
	store *StateContainer
}

// NewCatalogService creates the service backing categories, brands and attributes.
func NewCatalogService(store *StateContainer) *catalogService {
	return &catalogService{store: store}
}

// --- Categories ---

func (s *catalogService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	var found domain.Category
	err := s.store.View(func(st *domain.State) error {
		i := st.CategoryIndex(categoryID)
		if i < 0 {
			return notFound("category", categoryID)
		}
		found = st.Categories[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	s.store.Read(func(st *domain.State) {
		categories = slices.Clone(st.Categories)
	})
	return categories, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	category := domain.Category{
		ID:          s.store.NewID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   s.store.Now(),
	}
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		st.Categories = append(st.Categories, category)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.ID))
	return &category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.Category
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.CategoryIndex(categoryID)
		if i < 0 {
			return notFound("category", categoryID)
		}
		c := &st.Categories[i]
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.CategoryIndex(categoryID)
		if i < 0 {
			return notFound("category", categoryID)
		}
		st.Categories = slices.Delete(st.Categories, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

// --- Brands ---

func (s *catalogService) GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	var found domain.Brand
	err := s.store.View(func(st *domain.State) error {
		i := st.BrandIndex(brandID)
		if i < 0 {
			return notFound("brand", brandID)
		}
		found = st.Brands[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *catalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	s.store.Read(func(st *domain.State) {
		brands = slices.Clone(st.Brands)
	})
	return brands, nil
}

func (s *catalogService) CreateBrand(ctx context.Context, req dto.CreateBrandRequest) (*domain.Brand, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	brand := domain.Brand{
		ID:          s.store.NewID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   s.store.Now(),
	}
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		st.Brands = append(st.Brands, brand)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create brand", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Brand created", slog.String("brand_id", brand.ID))
	return &brand, nil
}

func (s *catalogService) UpdateBrand(ctx context.Context, brandID string, req dto.UpdateBrandRequest) (*domain.Brand, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.Brand
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.BrandIndex(brandID)
		if i < 0 {
			return notFound("brand", brandID)
		}
		b := &st.Brands[i]
		if req.Name != nil {
			b.Name = *req.Name
		}
		if req.Description != nil {
			b.Description = *req.Description
		}
		updated = *b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *catalogService) DeleteBrand(ctx context.Context, brandID string) error {
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.BrandIndex(brandID)
		if i < 0 {
			return notFound("brand", brandID)
		}
		st.Brands = slices.Delete(st.Brands, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Brand deleted", slog.String("brand_id", brandID))
	return nil
}

// --- Attributes ---

func (s *catalogService) GetAttributeByID(ctx context.Context, attributeID string) (*domain.Attribute, error) {
	var found domain.Attribute
	err := s.store.View(func(st *domain.State) error {
		i := st.AttributeIndex(attributeID)
		if i < 0 {
			return notFound("attribute", attributeID)
		}
		found = st.Attributes[i]
		found.Options = slices.Clone(found.Options)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *catalogService) ListAttributes(ctx context.Context) ([]domain.Attribute, error) {
	var attributes []domain.Attribute
	s.store.Read(func(st *domain.State) {
		attributes = make([]domain.Attribute, len(st.Attributes))
		for i, a := range st.Attributes {
			a.Options = slices.Clone(a.Options)
			attributes[i] = a
		}
	})
	return attributes, nil
}

func (s *catalogService) CreateAttribute(ctx context.Context, req dto.CreateAttributeRequest) (*domain.Attribute, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	attribute := domain.Attribute{
		ID:        s.store.NewID(),
		Name:      req.Name,
		Type:      domain.AttributeType(req.Type),
		Options:   slices.Clone(req.Options),
		CreatedAt: s.store.Now(),
	}
	if err := normalizeAttributeOptions(&attribute); err != nil {
		return nil, err
	}

	err := s.store.Mutate(ctx, func(st *domain.State) error {
		st.Attributes = append(st.Attributes, attribute)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create attribute", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Attribute created", slog.String("attribute_id", attribute.ID))
	return &attribute, nil
}

func (s *catalogService) UpdateAttribute(ctx context.Context, attributeID string, req dto.UpdateAttributeRequest) (*domain.Attribute, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.Attribute
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.AttributeIndex(attributeID)
		if i < 0 {
			return notFound("attribute", attributeID)
		}
		a := st.Attributes[i]
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Type != nil {
			a.Type = domain.AttributeType(*req.Type)
		}
		if req.Options != nil {
			a.Options = slices.Clone(req.Options)
		}
		if err := normalizeAttributeOptions(&a); err != nil {
			return err
		}
		st.Attributes[i] = a
		updated = a
		updated.Options = slices.Clone(a.Options)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *catalogService) DeleteAttribute(ctx context.Context, attributeID string) error {
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.AttributeIndex(attributeID)
		if i < 0 {
			return notFound("attribute", attributeID)
		}
		st.Attributes = slices.Delete(st.Attributes, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Attribute deleted", slog.String("attribute_id", attributeID))
	return nil
}

// normalizeAttributeOptions requires options for select attributes and drops them otherwise.
func normalizeAttributeOptions(a *domain.Attribute) error {
	if !a.Type.IsValid() {
		return validationError("unknown attribute type %q", a.Type)
	}
	if a.Type != domain.AttributeSelect {
		a.Options = nil
		return nil
	}
	if len(a.Options) == 0 {
		return validationError("select attribute %q needs at least one option", a.Name)
	}
	return nil
}

var (
	_ portssvc.CategorySvcFacade  = (*catalogService)(nil)
	_ portssvc.BrandSvcFacade     = (*catalogService)(nil)
	_ portssvc.AttributeSvcFacade = (*catalogService)(nil)
)
