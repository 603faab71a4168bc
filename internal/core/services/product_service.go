package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

type productService struct {
	BaseService
	store *StateContainer
}

// NewProductService creates the product and stock service.
func NewProductService(store *StateContainer) portssvc.ProductSvcFacade {
	return &productService{store: store}
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var found domain.Product
	err := s.store.View(func(st *domain.State) error {
		i := st.ProductIndex(productID)
		if i < 0 {
			return notFound("product", productID)
		}
		found = copyProduct(st.Products[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	products := []domain.Product{}
	s.store.Read(func(st *domain.State) {
		for _, p := range st.Products {
			if params.CategoryID != "" && p.CategoryID != params.CategoryID {
				continue
			}
			if params.BrandID != "" && p.BrandID != params.BrandID {
				continue
			}
			if params.SupplierID != "" && p.SupplierID != params.SupplierID {
				continue
			}
			if params.LowStock && !p.IsLowStock() {
				continue
			}
			if params.OutOfStock && !p.IsOutOfStock() {
				continue
			}
			if search != "" && !matchesProductSearch(p, search) {
				continue
			}
			products = append(products, copyProduct(p))
		}
	})
	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkMoney("price", req.Price); err != nil {
		return nil, err
	}
	if err := checkMoney("cost", req.Cost); err != nil {
		return nil, err
	}

	product := domain.Product{
		ID:          s.store.NewID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		SupplierID:  req.SupplierID,
		Attributes:  maps.Clone(req.Attributes),
		CreatedAt:   s.store.Now(),
	}

	err := s.store.Mutate(ctx, func(st *domain.State) error {
		if st.ProductIndexBySKU(product.SKU) >= 0 {
			return fmt.Errorf("product sku %q: %w", product.SKU, apperrors.ErrDuplicate)
		}
		if err := checkProductReferences(st, product); err != nil {
			return err
		}
		st.Products = append(st.Products, product)
		return nil
	})
	if err != nil {
		s.LogDebug(ctx, "Product creation rejected", slog.String("sku", req.SKU), slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ID), slog.String("sku", product.SKU))
	result := copyProduct(product)
	return &result, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Price != nil {
		if err := checkMoney("price", *req.Price); err != nil {
			return nil, err
		}
	}
	if req.Cost != nil {
		if err := checkMoney("cost", *req.Cost); err != nil {
			return nil, err
		}
	}

	var updated domain.Product
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.ProductIndex(productID)
		if i < 0 {
			return notFound("product", productID)
		}
		p := st.Products[i]
		if req.SKU != nil && *req.SKU != p.SKU {
			if st.ProductIndexBySKU(*req.SKU) >= 0 {
				return fmt.Errorf("product sku %q: %w", *req.SKU, apperrors.ErrDuplicate)
			}
			p.SKU = *req.SKU
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Cost != nil {
			p.Cost = *req.Cost
		}
		if req.Barcode != nil {
			p.Barcode = *req.Barcode
		}
		if req.MinStock != nil {
			p.MinStock = *req.MinStock
		}
		if req.CategoryID != nil {
			p.CategoryID = *req.CategoryID
		}
		if req.BrandID != nil {
			p.BrandID = *req.BrandID
		}
		if req.SupplierID != nil {
			p.SupplierID = *req.SupplierID
		}
		if req.Attributes != nil {
			p.Attributes = maps.Clone(req.Attributes)
		}
		// Only links the request touches are checked, so a product whose
		// category was deleted can still be edited.
		if err := checkChangedReferences(st, req); err != nil {
			return err
		}
		st.Products[i] = p
		updated = copyProduct(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.ProductIndex(productID)
		if i < 0 {
			return notFound("product", productID)
		}
		st.Products = slices.Delete(st.Products, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}

func (s *productService) UpdateStock(ctx context.Context, productID string, delta int) (*domain.Product, error) {
	if delta == 0 {
		return nil, validationError("stock delta must not be zero")
	}

	movement := domain.StockMovement{
		ID:        s.store.NewID(),
		ProductID: productID,
		Type:      domain.MovementIn,
		Quantity:  delta,
		Reason:    domain.ReasonManualAdjustment,
		CreatedAt: s.store.Now(),
		CreatedBy: s.ActorID(ctx),
	}
	if delta < 0 {
		movement.Type = domain.MovementOut
		movement.Quantity = -delta
	}

	var updated domain.Product
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.ProductIndex(productID)
		if i < 0 {
			return notFound("product", productID)
		}
		st.Products[i].Stock += movement.SignedQuantity()
		st.StockMovements = append(st.StockMovements, movement)
		updated = copyProduct(st.Products[i])
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Stock adjusted",
		slog.String("product_id", productID),
		slog.Int("delta", delta),
		slog.Int("stock", updated.Stock))
	return &updated, nil
}

func (s *productService) ListStockMovements(ctx context.Context, productID string) ([]domain.StockMovement, error) {
	movements := []domain.StockMovement{}
	s.store.Read(func(st *domain.State) {
		for _, m := range st.StockMovements {
			if productID == "" || m.ProductID == productID {
				movements = append(movements, m)
			}
		}
	})
	return movements, nil
}

// checkProductReferences verifies the catalog links of p and its select attribute values.
func checkProductReferences(st *domain.State, p domain.Product) error {
	if err := checkCategory(st, p.CategoryID); err != nil {
		return err
	}
	if err := checkBrand(st, p.BrandID); err != nil {
		return err
	}
	if err := checkSupplier(st, p.SupplierID); err != nil {
		return err
	}
	return checkAttributeValues(st, p.Attributes)
}

func checkChangedReferences(st *domain.State, req dto.UpdateProductRequest) error {
	if req.CategoryID != nil {
		if err := checkCategory(st, *req.CategoryID); err != nil {
			return err
		}
	}
	if req.BrandID != nil {
		if err := checkBrand(st, *req.BrandID); err != nil {
			return err
		}
	}
	if req.SupplierID != nil {
		if err := checkSupplier(st, *req.SupplierID); err != nil {
			return err
		}
	}
	if req.Attributes != nil {
		return checkAttributeValues(st, req.Attributes)
	}
	return nil
}

func checkCategory(st *domain.State, categoryID string) error {
	if st.CategoryIndex(categoryID) < 0 {
		return notFound("category", categoryID)
	}
	return nil
}

func checkBrand(st *domain.State, brandID string) error {
	if st.BrandIndex(brandID) < 0 {
		return notFound("brand", brandID)
	}
	return nil
}

// checkSupplier accepts an empty id; the supplier link is optional.
func checkSupplier(st *domain.State, supplierID string) error {
	if supplierID != "" && st.SupplierIndex(supplierID) < 0 {
		return notFound("supplier", supplierID)
	}
	return nil
}

// checkAttributeValues rejects select attribute values that are not one of the options.
// Keys naming no attribute definition are free-form.
func checkAttributeValues(st *domain.State, attributes map[string]any) error {
	for key, value := range attributes {
		i := st.AttributeIndex(key)
		if i < 0 {
			continue
		}
		attr := st.Attributes[i]
		if attr.Type != domain.AttributeSelect {
			continue
		}
		if option, ok := value.(string); !ok || !attr.AllowsOption(option) {
			return validationError("value %v is not an option of attribute %q", value, attr.Name)
		}
	}
	return nil
}

func matchesProductSearch(p domain.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.SKU), search) ||
		strings.Contains(strings.ToLower(p.Barcode), search)
}

func copyProduct(p domain.Product) domain.Product {
	p.Attributes = maps.Clone(p.Attributes)
	return p
}

func checkMoney(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return validationError("%s must not be negative", field)
	}
	return nil
}
