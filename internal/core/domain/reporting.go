package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod bounds a report by sale date. Zero values leave that side open.
type ReportPeriod struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the period, inclusive on both ends.
func (p ReportPeriod) Contains(t time.Time) bool {
	if !p.From.IsZero() && t.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && t.After(p.To) {
		return false
	}
	return true
}

// SalesReport lists the sales of a period with their totals.
// TotalProfit is collected cash less the cost of the goods sold.
type SalesReport struct {
	Period       ReportPeriod    `json:"period"`
	Sales        []Sale          `json:"sales"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
}

// ProductPerformanceRow summarises the sales of one product in a period.
type ProductPerformanceRow struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	QuantitySold  int             `json:"quantitySold"`
	Revenue       decimal.Decimal `json:"revenue"`
	Cost          decimal.Decimal `json:"cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
}

// StockReportRow is one product line of the stock report. InitialStock is the
// stock before the period's sales.
type StockReportRow struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	SKU          string          `json:"sku"`
	InitialStock int             `json:"initialStock"`
	SoldQuantity int             `json:"soldQuantity"`
	CurrentStock int             `json:"currentStock"`
	MinStock     int             `json:"minStock"`
	Revenue      decimal.Decimal `json:"revenue"`
	StockValue   decimal.Decimal `json:"stockValue"`
	LowStock     bool            `json:"lowStock"`
}

// CreditSummary totals credit/debit records by status.
type CreditSummary struct {
	TotalRecords     int             `json:"totalRecords"`
	PendingCount     int             `json:"pendingCount"`
	PartialCount     int             `json:"partialCount"`
	ClearedCount     int             `json:"clearedCount"`
	OverdueCount     int             `json:"overdueCount"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	TotalCollected   decimal.Decimal `json:"totalCollected"`
}

// DashboardSummary is the at-a-glance view of the business.
type DashboardSummary struct {
	ProductCount     int             `json:"productCount"`
	CategoryCount    int             `json:"categoryCount"`
	BrandCount       int             `json:"brandCount"`
	LowStockCount    int             `json:"lowStockCount"`
	CustomerCount    int             `json:"customerCount"`
	TodaySalesCount  int             `json:"todaySalesCount"`
	TodayRevenue     decimal.Decimal `json:"todayRevenue"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	InventoryValue   decimal.Decimal `json:"inventoryValue"`
}
