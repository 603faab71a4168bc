package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	store *StateContainer
}

// NewReportingService creates a new reporting service reading from the ledger state.
func NewReportingService(store *StateContainer) portssvc.ReportingService {
	return &reportingService{store: store}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// SalesReport lists the sales of the period, newest first, with their totals.
// Cost uses each product's current cost; sales of deleted products carry no cost.
func (s *reportingService) SalesReport(ctx context.Context, period domain.ReportPeriod) (*domain.SalesReport, error) {
	report := &domain.SalesReport{
		Period:       period,
		Sales:        []domain.Sale{},
		TotalRevenue: decimal.Zero,
		TotalPaid:    decimal.Zero,
		Outstanding:  decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalProfit:  decimal.Zero,
	}

	s.store.Read(func(st *domain.State) {
		for _, sale := range st.Sales {
			if !period.Contains(sale.SaleDate) {
				continue
			}
			report.Sales = append(report.Sales, sale)
			report.TotalRevenue = report.TotalRevenue.Add(sale.TotalAmount)
			report.TotalPaid = report.TotalPaid.Add(sale.PaidAmount)
			if pi := st.ProductIndex(sale.ProductID); pi >= 0 {
				report.TotalCost = report.TotalCost.Add(accounting.LineTotal(sale.Quantity, st.Products[pi].Cost))
			}
		}
	})

	sortSalesNewestFirst(report.Sales)
	report.Outstanding = report.TotalRevenue.Sub(report.TotalPaid)
	report.TotalProfit = report.TotalPaid.Sub(report.TotalCost)

	s.LogInfo(ctx, "Sales report generated",
		slog.Int("sale_count", len(report.Sales)),
		slog.String("revenue", report.TotalRevenue.String()))
	return report, nil
}

// ProductPerformance aggregates the period's sales per product, highest revenue first.
func (s *reportingService) ProductPerformance(ctx context.Context, period domain.ReportPeriod) ([]domain.ProductPerformanceRow, error) {
	rows := []domain.ProductPerformanceRow{}
	positions := map[string]int{}

	s.store.Read(func(st *domain.State) {
		for _, sale := range st.Sales {
			if !period.Contains(sale.SaleDate) {
				continue
			}
			pi := st.ProductIndex(sale.ProductID)
			if pi < 0 {
				continue
			}
			product := st.Products[pi]

			idx, ok := positions[product.ID]
			if !ok {
				idx = len(rows)
				positions[product.ID] = idx
				rows = append(rows, domain.ProductPerformanceRow{
					ProductID:   product.ID,
					ProductName: product.Name,
					Revenue:     decimal.Zero,
					Cost:        decimal.Zero,
					Profit:      decimal.Zero,
				})
			}
			row := &rows[idx]
			cost := accounting.LineTotal(sale.Quantity, product.Cost)
			row.QuantitySold += sale.Quantity
			row.Revenue = row.Revenue.Add(sale.TotalAmount)
			row.Cost = row.Cost.Add(cost)
			row.Profit = row.Profit.Add(accounting.LineTotal(sale.Quantity, sale.UnitPrice).Sub(cost))
		}
	})

	for i := range rows {
		rows[i].MarginPercent = accounting.MarginPercent(rows[i].Profit, rows[i].Revenue)
	}
	slices.SortStableFunc(rows, func(a, b domain.ProductPerformanceRow) int {
		return b.Revenue.Cmp(a.Revenue)
	})
	return rows, nil
}

// StockReport lists every product in catalog order.
func (s *reportingService) StockReport(ctx context.Context, period domain.ReportPeriod) ([]domain.StockReportRow, error) {
	rows := []domain.StockReportRow{}

	s.store.Read(func(st *domain.State) {
		sold := map[string]int{}
		revenue := map[string]decimal.Decimal{}
		for _, sale := range st.Sales {
			if !period.Contains(sale.SaleDate) {
				continue
			}
			sold[sale.ProductID] += sale.Quantity
			revenue[sale.ProductID] = revenue[sale.ProductID].Add(sale.TotalAmount)
		}

		for _, p := range st.Products {
			rows = append(rows, domain.StockReportRow{
				ProductID:    p.ID,
				ProductName:  p.Name,
				SKU:          p.SKU,
				InitialStock: p.Stock + sold[p.ID],
				SoldQuantity: sold[p.ID],
				CurrentStock: p.Stock,
				MinStock:     p.MinStock,
				Revenue:      revenue[p.ID],
				StockValue:   p.StockValue(),
				LowStock:     p.IsLowStock(),
			})
		}
	})
	return rows, nil
}

func (s *reportingService) LowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	s.store.Read(func(st *domain.State) {
		for _, p := range st.Products {
			if p.IsLowStock() {
				products = append(products, copyProduct(p))
			}
		}
	})
	slices.SortStableFunc(products, func(a, b domain.Product) int {
		if a.Stock != b.Stock {
			return a.Stock - b.Stock
		}
		return strings.Compare(a.Name, b.Name)
	})
	return products, nil
}

// DashboardSummary uses the UTC calendar day for today's figures.
func (s *reportingService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	now := s.store.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today := domain.ReportPeriod{From: startOfDay, To: startOfDay.Add(24*time.Hour - time.Nanosecond)}

	summary := &domain.DashboardSummary{
		TodayRevenue:     decimal.Zero,
		TotalRevenue:     decimal.Zero,
		TotalOutstanding: decimal.Zero,
		InventoryValue:   decimal.Zero,
	}

	s.store.Read(func(st *domain.State) {
		summary.ProductCount = len(st.Products)
		summary.CategoryCount = len(st.Categories)
		summary.BrandCount = len(st.Brands)
		summary.CustomerCount = len(st.Customers)
		for _, p := range st.Products {
			if p.IsLowStock() {
				summary.LowStockCount++
			}
			summary.InventoryValue = summary.InventoryValue.Add(p.StockValue())
		}
		for _, sale := range st.Sales {
			summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalAmount)
			if today.Contains(sale.SaleDate) {
				summary.TodaySalesCount++
				summary.TodayRevenue = summary.TodayRevenue.Add(sale.TotalAmount)
			}
		}
		for _, r := range st.CreditDebitRecords {
			if !r.IsCleared() {
				summary.TotalOutstanding = summary.TotalOutstanding.Add(r.RemainingAmount)
			}
		}
	})
	return summary, nil
}
