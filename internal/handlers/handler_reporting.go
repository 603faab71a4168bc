package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/SscSPs/inventory_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const formatCSV = "csv"

// reportingHandler handles HTTP requests for reports and the dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	precision        int
}

// newReportingHandler creates a new reportingHandler. precision is the number
// of decimal places amounts are printed with in CSV exports.
func newReportingHandler(rs portssvc.ReportingService, precision int) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		precision:        precision,
	}
}

// registerReportingRoutes registers report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, precision int) {
	h := newReportingHandler(reportingService, precision)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/sales", h.getSalesReport)
		reportingGroup.GET("/profit", h.getProductPerformance)
		reportingGroup.GET("/stock", h.getStockReport)
		reportingGroup.GET("/low-stock", h.getLowStock)
		reportingGroup.GET("/dashboard", h.getDashboard)
	}
}

// getSalesReport godoc
// @Summary Sales report
// @Description Sales of the period with revenue, collected cash, outstanding amount, cost and profit. Profit is collected cash less cost.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Param format query string false "Output format" Enums(json, csv)
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportingHandler) getSalesReport(c *gin.Context) {
	params, ok := bindReportParams(c)
	if !ok {
		return
	}

	report, err := h.reportingService.SalesReport(c.Request.Context(), params.Period())
	if err != nil {
		respondError(c, err, "Failed to generate sales report")
		return
	}

	if params.Format != formatCSV {
		c.JSON(http.StatusOK, dto.ToSalesReportResponse(report))
		return
	}

	rows := make([][]string, 0, len(report.Sales))
	for _, s := range report.Sales {
		rows = append(rows, []string{
			s.ID,
			s.SaleDate.Format("2006-01-02"),
			s.CustomerName,
			s.ProductID,
			strconv.Itoa(s.Quantity),
			h.money(s.UnitPrice),
			h.money(s.TotalAmount),
			h.money(s.PaidAmount),
			h.money(s.OutstandingAmount()),
			string(s.PaymentMethod),
			string(s.PaymentStatus),
		})
	}
	h.writeCSV(c, "sales-report", []string{
		"Sale ID", "Date", "Customer", "Product", "Quantity", "Unit Price",
		"Total Amount", "Paid Amount", "Outstanding", "Payment Method", "Status",
	}, rows)
}

// getProductPerformance godoc
// @Summary Profit by product
// @Description Quantity, revenue, cost, profit and margin per product for the period, highest revenue first.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Param format query string false "Output format" Enums(json, csv)
// @Success 200 {object} dto.ProductPerformanceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/profit [get]
func (h *reportingHandler) getProductPerformance(c *gin.Context) {
	params, ok := bindReportParams(c)
	if !ok {
		return
	}

	perf, err := h.reportingService.ProductPerformance(c.Request.Context(), params.Period())
	if err != nil {
		respondError(c, err, "Failed to generate profit report")
		return
	}

	if params.Format != formatCSV {
		c.JSON(http.StatusOK, dto.ProductPerformanceResponse{Products: perf})
		return
	}

	rows := make([][]string, 0, len(perf))
	for _, p := range perf {
		rows = append(rows, []string{
			p.ProductName,
			strconv.Itoa(p.QuantitySold),
			h.money(p.Revenue),
			h.money(p.Cost),
			h.money(p.Profit),
			p.MarginPercent.StringFixed(2),
		})
	}
	h.writeCSV(c, "profit-report", []string{"Product", "Quantity Sold", "Revenue", "Cost", "Profit", "Margin %"}, rows)
}

// getStockReport godoc
// @Summary Stock report
// @Description Every product with its stock before and after the period's sales.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Param format query string false "Output format" Enums(json, csv)
// @Success 200 {object} dto.StockReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/stock [get]
func (h *reportingHandler) getStockReport(c *gin.Context) {
	params, ok := bindReportParams(c)
	if !ok {
		return
	}

	stock, err := h.reportingService.StockReport(c.Request.Context(), params.Period())
	if err != nil {
		respondError(c, err, "Failed to generate stock report")
		return
	}

	if params.Format != formatCSV {
		c.JSON(http.StatusOK, dto.StockReportResponse{Products: stock})
		return
	}

	rows := make([][]string, 0, len(stock))
	for _, r := range stock {
		rows = append(rows, []string{
			r.ProductName,
			r.SKU,
			strconv.Itoa(r.InitialStock),
			strconv.Itoa(r.SoldQuantity),
			strconv.Itoa(r.CurrentStock),
			h.money(r.Revenue),
		})
	}
	h.writeCSV(c, "stock-report", []string{"Product", "SKU", "Initial Stock", "Sold", "Current Stock", "Revenue"}, rows)
}

// getLowStock godoc
// @Summary Products at or below their minimum stock
// @Tags reports
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /reports/low-stock [get]
func (h *reportingHandler) getLowStock(c *gin.Context) {
	products, err := h.reportingService.LowStockProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list low stock products")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// getDashboard godoc
// @Summary Dashboard summary
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	summary, err := h.reportingService.DashboardSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func bindReportParams(c *gin.Context) (dto.ReportParams, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err)
		return params, false
	}
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "'to' must not be before 'from'"})
		return params, false
	}
	return params, true
}

func (h *reportingHandler) money(amount decimal.Decimal) string {
	return utils.FormatWithPrecision(amount, h.precision)
}

// writeCSV streams header and rows as an attachment named <name>.csv.
func (h *reportingHandler) writeCSV(c *gin.Context, name string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(append([][]string{header}, rows...)); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write CSV",
			slog.String("report", name), slog.String("error", err.Error()))
	}
}
