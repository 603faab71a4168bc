package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams bounds a report by sale date. Both ends are optional and inclusive.
type ReportParams struct {
	From   *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To     *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Format string     `form:"format" binding:"omitempty,oneof=json csv"`
}

// Period converts the params to a domain.ReportPeriod. The To date covers the whole day.
func (p ReportParams) Period() domain.ReportPeriod {
	var period domain.ReportPeriod
	if p.From != nil {
		period.From = *p.From
	}
	if p.To != nil {
		period.To = p.To.Add(24*time.Hour - time.Nanosecond)
	}
	return period
}

// SalesReportResponse represents the sales report response
type SalesReportResponse struct {
	FromDate string         `json:"fromDate,omitempty"`
	ToDate   string         `json:"toDate,omitempty"`
	Sales    []SaleResponse `json:"sales"`
	Summary  struct {
		TotalRevenue decimal.Decimal `json:"totalRevenue"`
		TotalPaid    decimal.Decimal `json:"totalPaid"`
		Outstanding  decimal.Decimal `json:"outstanding"`
		TotalCost    decimal.Decimal `json:"totalCost"`
		TotalProfit  decimal.Decimal `json:"totalProfit"`
	} `json:"summary"`
}

// ToSalesReportResponse converts a domain.SalesReport to its DTO
func ToSalesReportResponse(r *domain.SalesReport) SalesReportResponse {
	resp := SalesReportResponse{Sales: ToSaleResponses(r.Sales)}
	if !r.Period.From.IsZero() {
		resp.FromDate = r.Period.From.Format("2006-01-02")
	}
	if !r.Period.To.IsZero() {
		resp.ToDate = r.Period.To.Format("2006-01-02")
	}
	resp.Summary.TotalRevenue = r.TotalRevenue
	resp.Summary.TotalPaid = r.TotalPaid
	resp.Summary.Outstanding = r.Outstanding
	resp.Summary.TotalCost = r.TotalCost
	resp.Summary.TotalProfit = r.TotalProfit
	return resp
}

// ProductPerformanceResponse wraps the product performance rows
type ProductPerformanceResponse struct {
	Products []domain.ProductPerformanceRow `json:"products"`
}

// StockReportResponse wraps the stock report rows
type StockReportResponse struct {
	Products []domain.StockReportRow `json:"products"`
}
