package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers all sale routes.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.createSale)
		sales.GET("/:id", h.getSale)
		sales.PUT("/:id", h.updateSale)
		sales.DELETE("/:id", h.deleteSale)
		sales.POST("/:id/print", h.markPrinted)
	}
}

// listSales godoc
// @Summary List sales
// @Description Returns sales newest first, one page at a time. Pass nextToken from the previous page to continue.
// @Tags sales
// @Produce json
// @Param from query string false "Earliest sale date (YYYY-MM-DD)"
// @Param to query string false "Latest sale date (YYYY-MM-DD)"
// @Param customerId query string false "Filter by customer"
// @Param productId query string false "Filter by product"
// @Param status query string false "Filter by payment status" Enums(paid, partial, pending)
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err)
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createSale godoc
// @Summary Record a sale
// @Description Decrements stock, records a stock movement, updates the customer's balance and opens a credit/debit record for credit or partly paid sales.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid input or insufficient stock"
// @Failure 404 {object} ErrorResponse "Unknown product or customer"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	logger.Info("Received request to create sale",
		slog.String("product_id", req.ProductID),
		slog.Int("quantity", req.Quantity))

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// updateSale godoc
// @Summary Correct a sale
// @Description Only the customer name, phone and sale date can change.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to update"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [put]
func (h *saleHandler) updateSale(c *gin.Context) {
	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Stock, movements, balances and credit/debit records are left as they are.
// @Tags sales
// @Param id path string true "Sale ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	if err := h.saleService.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}

// markPrinted godoc
// @Summary Mark a sale's invoice as printed
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/print [post]
func (h *saleHandler) markPrinted(c *gin.Context) {
	sale, err := h.saleService.MarkSaleAsPrinted(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to mark sale as printed")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}
