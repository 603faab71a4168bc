package services

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// ReportingService defines operations for generating sales and inventory reports
type ReportingService interface {
	// SalesReport lists the sales of a period with revenue, collection and profit totals.
	SalesReport(ctx context.Context, period domain.ReportPeriod) (*domain.SalesReport, error)

	// ProductPerformance aggregates sales per product for a period.
	ProductPerformance(ctx context.Context, period domain.ReportPeriod) ([]domain.ProductPerformanceRow, error)

	// StockReport lists every product with its current stock and the quantity sold in the period.
	StockReport(ctx context.Context, period domain.ReportPeriod) ([]domain.StockReportRow, error)

	// LowStockProducts lists products at or below their minimum stock.
	LowStockProducts(ctx context.Context) ([]domain.Product, error)

	// DashboardSummary returns today's figures and running totals.
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
