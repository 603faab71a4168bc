package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for categories, brands and attributes.
type catalogHandler struct {
	categoryService  portssvc.CategorySvcFacade
	brandService     portssvc.BrandSvcFacade
	attributeService portssvc.AttributeSvcFacade
}

func newCatalogHandler(cs portssvc.CategorySvcFacade, bs portssvc.BrandSvcFacade, as portssvc.AttributeSvcFacade) *catalogHandler {
	return &catalogHandler{
		categoryService:  cs,
		brandService:     bs,
		attributeService: as,
	}
}

// registerCatalogRoutes registers the category, brand and attribute routes.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade, bs portssvc.BrandSvcFacade, as portssvc.AttributeSvcFacade) {
	h := newCatalogHandler(cs, bs, as)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}

	brands := rg.Group("/brands")
	{
		brands.GET("", h.listBrands)
		brands.POST("", h.createBrand)
		brands.GET("/:id", h.getBrand)
		brands.PUT("/:id", h.updateBrand)
		brands.DELETE("/:id", h.deleteBrand)
	}

	attributes := rg.Group("/attributes")
	{
		attributes.GET("", h.listAttributes)
		attributes.POST("", h.createAttribute)
		attributes.GET("/:id", h.getAttribute)
		attributes.PUT("/:id", h.updateAttribute)
		attributes.DELETE("/:id", h.deleteAttribute)
	}
}

// listCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *catalogHandler) listCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// createCategory godoc
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *catalogHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Category created", slog.String("category_id", category.ID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// getCategory godoc
// @Summary Get a category
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *catalogHandler) getCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *catalogHandler) updateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Tags catalog
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *catalogHandler) deleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

// listBrands godoc
// @Summary List brands
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.BrandResponse
// @Security BearerAuth
// @Router /brands [get]
func (h *catalogHandler) listBrands(c *gin.Context) {
	brands, err := h.brandService.ListBrands(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list brands")
		return
	}
	c.JSON(http.StatusOK, dto.ToBrandResponses(brands))
}

// createBrand godoc
// @Summary Create a brand
// @Tags catalog
// @Accept json
// @Produce json
// @Param brand body dto.CreateBrandRequest true "Brand details"
// @Success 201 {object} dto.BrandResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /brands [post]
func (h *catalogHandler) createBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	brand, err := h.brandService.CreateBrand(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create brand")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBrandResponse(brand))
}

// getBrand godoc
// @Summary Get a brand
// @Tags catalog
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} dto.BrandResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /brands/{id} [get]
func (h *catalogHandler) getBrand(c *gin.Context) {
	brand, err := h.brandService.GetBrandByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve brand")
		return
	}
	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// updateBrand godoc
// @Summary Update a brand
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Param brand body dto.UpdateBrandRequest true "Fields to update"
// @Success 200 {object} dto.BrandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /brands/{id} [put]
func (h *catalogHandler) updateBrand(c *gin.Context) {
	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	brand, err := h.brandService.UpdateBrand(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update brand")
		return
	}
	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// deleteBrand godoc
// @Summary Delete a brand
// @Tags catalog
// @Param id path string true "Brand ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /brands/{id} [delete]
func (h *catalogHandler) deleteBrand(c *gin.Context) {
	if err := h.brandService.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete brand")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAttributes godoc
// @Summary List product attributes
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.AttributeResponse
// @Security BearerAuth
// @Router /attributes [get]
func (h *catalogHandler) listAttributes(c *gin.Context) {
	attributes, err := h.attributeService.ListAttributes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list attributes")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttributeResponses(attributes))
}

// createAttribute godoc
// @Summary Create a product attribute
// @Description Select attributes need at least one option; other types ignore options.
// @Tags catalog
// @Accept json
// @Produce json
// @Param attribute body dto.CreateAttributeRequest true "Attribute details"
// @Success 201 {object} dto.AttributeResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /attributes [post]
func (h *catalogHandler) createAttribute(c *gin.Context) {
	var req dto.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	attribute, err := h.attributeService.CreateAttribute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create attribute")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttributeResponse(attribute))
}

// getAttribute godoc
// @Summary Get a product attribute
// @Tags catalog
// @Produce json
// @Param id path string true "Attribute ID"
// @Success 200 {object} dto.AttributeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attributes/{id} [get]
func (h *catalogHandler) getAttribute(c *gin.Context) {
	attribute, err := h.attributeService.GetAttributeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve attribute")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttributeResponse(attribute))
}

// updateAttribute godoc
// @Summary Update a product attribute
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Attribute ID"
// @Param attribute body dto.UpdateAttributeRequest true "Fields to update"
// @Success 200 {object} dto.AttributeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attributes/{id} [put]
func (h *catalogHandler) updateAttribute(c *gin.Context) {
	var req dto.UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	attribute, err := h.attributeService.UpdateAttribute(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update attribute")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttributeResponse(attribute))
}

// deleteAttribute godoc
// @Summary Delete a product attribute
// @Tags catalog
// @Param id path string true "Attribute ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attributes/{id} [delete]
func (h *catalogHandler) deleteAttribute(c *gin.Context) {
	if err := h.attributeService.DeleteAttribute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete attribute")
		return
	}
	c.Status(http.StatusNoContent)
}
