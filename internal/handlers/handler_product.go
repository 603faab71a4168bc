package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests for products and their stock.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers product, stock and stock movement routes.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
		products.POST("/:id/stock", h.updateStock)
		products.GET("/:id/movements", h.listProductMovements)
	}
	rg.GET("/stock-movements", h.listAllMovements)
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param categoryId query string false "Filter by category"
// @Param brandId query string false "Filter by brand"
// @Param supplierId query string false "Filter by supplier"
// @Param search query string false "Match name, SKU or barcode"
// @Param lowStock query bool false "Only products at or below their minimum stock"
// @Param outOfStock query bool false "Only products with no stock left"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err)
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown category, brand or supplier"
// @Failure 409 {object} ErrorResponse "SKU already in use"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Stock is not editable here; use the stock endpoint.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateStock godoc
// @Summary Adjust product stock
// @Description Adds a signed delta to the stock and records a manual stock movement.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param stock body dto.UpdateStockRequest true "Signed stock delta"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id}/stock [post]
func (h *productHandler) updateStock(c *gin.Context) {
	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	productID := c.Param("id")
	product, err := h.productService.UpdateStock(c.Request.Context(), productID, req.Delta)
	if err != nil {
		respondError(c, err, "Failed to update stock")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Stock updated",
		slog.String("product_id", productID), slog.Int("delta", req.Delta))
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProductMovements godoc
// @Summary List a product's stock movements
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} dto.StockMovementResponse
// @Security BearerAuth
// @Router /products/{id}/movements [get]
func (h *productHandler) listProductMovements(c *gin.Context) {
	h.respondMovements(c, c.Param("id"))
}

// listAllMovements godoc
// @Summary List all stock movements
// @Tags products
// @Produce json
// @Success 200 {array} dto.StockMovementResponse
// @Security BearerAuth
// @Router /stock-movements [get]
func (h *productHandler) listAllMovements(c *gin.Context) {
	h.respondMovements(c, "")
}

func (h *productHandler) respondMovements(c *gin.Context, productID string) {
	movements, err := h.productService.ListStockMovements(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err, "Failed to list stock movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockMovementResponses(movements))
}
