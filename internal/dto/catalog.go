package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CreateBrandRequest defines the data needed to create a new brand.
type CreateBrandRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateBrandRequest defines the data allowed for updating a brand.
type UpdateBrandRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CreateAttributeRequest defines the data needed to create a new attribute.
// Options must be non-empty for select attributes and is dropped for the other types.
type CreateAttributeRequest struct {
	Name    string   `json:"name" binding:"required,max=100"`
	Type    string   `json:"type" binding:"required,oneof=text number boolean select"`
	Options []string `json:"options" binding:"omitempty,dive,required"`
}

// UpdateAttributeRequest defines the data allowed for updating an attribute.
// A nil Options leaves the options untouched.
type UpdateAttributeRequest struct {
	Name    *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Type    *string  `json:"type" binding:"omitempty,oneof=text number boolean select"`
	Options []string `json:"options" binding:"omitempty,dive,required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BrandResponse defines the data returned for a brand.
type BrandResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AttributeResponse defines the data returned for an attribute.
type AttributeResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Type      domain.AttributeType `json:"type"`
	Options   []string             `json:"options"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

// ToCategoryResponses converts a slice of domain.Category to a slice of CategoryResponse DTOs
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}

// ToBrandResponse converts a domain.Brand to BrandResponse DTO
func ToBrandResponse(b *domain.Brand) BrandResponse {
	return BrandResponse{ID: b.ID, Name: b.Name, Description: b.Description, CreatedAt: b.CreatedAt}
}

// ToBrandResponses converts a slice of domain.Brand to a slice of BrandResponse DTOs
func ToBrandResponses(brands []domain.Brand) []BrandResponse {
	res := make([]BrandResponse, len(brands))
	for i, b := range brands {
		res[i] = ToBrandResponse(&b)
	}
	return res
}

// ToAttributeResponse converts a domain.Attribute to AttributeResponse DTO
func ToAttributeResponse(a *domain.Attribute) AttributeResponse {
	options := a.Options
	if options == nil {
		options = []string{}
	}
	return AttributeResponse{ID: a.ID, Name: a.Name, Type: a.Type, Options: options, CreatedAt: a.CreatedAt}
}

// ToAttributeResponses converts a slice of domain.Attribute to a slice of AttributeResponse DTOs
func ToAttributeResponses(attributes []domain.Attribute) []AttributeResponse {
	res := make([]AttributeResponse, len(attributes))
	for i, a := range attributes {
		res[i] = ToAttributeResponse(&a)
	}
	return res
}
