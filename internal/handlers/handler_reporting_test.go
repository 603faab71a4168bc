package handlers_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	handlerSuite
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}

func (s *ReportingHandlerTestSuite) sampleReport() *domain.SalesReport {
	return &domain.SalesReport{
		Sales: []domain.Sale{{
			ID:            "sale-1",
			ProductID:     s.testProductID,
			CustomerName:  "Ko Aung",
			Quantity:      2,
			UnitPrice:     decimal.NewFromInt(1500),
			TotalAmount:   decimal.NewFromInt(3000),
			PaidAmount:    decimal.NewFromInt(1000),
			PaymentMethod: domain.PaymentMethodCredit,
			PaymentStatus: domain.PaymentStatusPartial,
			SaleDate:      time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC),
		}},
		TotalRevenue: decimal.NewFromInt(3000),
		TotalPaid:    decimal.NewFromInt(1000),
		Outstanding:  decimal.NewFromInt(2000),
		TotalCost:    decimal.NewFromInt(1800),
		TotalProfit:  decimal.NewFromInt(-800),
	}
}

func (s *ReportingHandlerTestSuite) TestSalesReport_JSONPeriod() {
	s.reportingSvc.On("SalesReport", mock.Anything, mock.MatchedBy(func(p domain.ReportPeriod) bool {
		// "to" covers the whole day
		return p.From.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) &&
			p.To.After(time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)) &&
			p.To.Before(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	})).Return(s.sampleReport(), nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/sales?from=2024-05-01&to=2024-05-31", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.SalesReportResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Sales, 1)
	s.True(resp.Summary.Outstanding.Equal(decimal.NewFromInt(2000)))
	s.True(resp.Summary.TotalProfit.Equal(decimal.NewFromInt(-800)))
}

func (s *ReportingHandlerTestSuite) TestSalesReport_CSV() {
	s.reportingSvc.On("SalesReport", mock.Anything, mock.Anything).Return(s.sampleReport(), nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/sales?format=csv", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/csv")
	s.Contains(w.Header().Get("Content-Disposition"), `filename="sales-report.csv"`)

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal([]string{
		"Sale ID", "Date", "Customer", "Product", "Quantity", "Unit Price",
		"Total Amount", "Paid Amount", "Outstanding", "Payment Method", "Status",
	}, records[0])
	s.Equal([]string{
		"sale-1", "2024-05-10", "Ko Aung", s.testProductID, "2", "1500",
		"3000", "1000", "2000", "credit", "partial",
	}, records[1])
}

func (s *ReportingHandlerTestSuite) TestProfitReport_CSVMargin() {
	rows := []domain.ProductPerformanceRow{{
		ProductID:     s.testProductID,
		ProductName:   "Phone",
		QuantitySold:  3,
		Revenue:       decimal.NewFromInt(2800),
		Cost:          decimal.NewFromInt(1800),
		Profit:        decimal.NewFromInt(1000),
		MarginPercent: decimal.RequireFromString("35.71"),
	}}
	s.reportingSvc.On("ProductPerformance", mock.Anything, mock.Anything).Return(rows, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/profit?format=csv", nil)

	s.Equal(http.StatusOK, w.Code)
	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal([]string{"Phone", "3", "2800", "1800", "1000", "35.71"}, records[1])
}

func (s *ReportingHandlerTestSuite) TestStockReport_EmptyCSVHasHeader() {
	s.reportingSvc.On("StockReport", mock.Anything, mock.Anything).Return([]domain.StockReportRow{}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/stock?format=csv", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Product,SKU,Initial Stock,Sold,Current Stock,Revenue\n", w.Body.String())
}

func (s *ReportingHandlerTestSuite) TestRejectsInvertedPeriod() {
	w := s.do(http.MethodGet, "/api/v1/reports/sales?from=2024-06-01&to=2024-05-01", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.reportingSvc.AssertNotCalled(s.T(), "SalesReport", mock.Anything, mock.Anything)
}

func (s *ReportingHandlerTestSuite) TestRejectsUnknownFormat() {
	w := s.do(http.MethodGet, "/api/v1/reports/stock?format=xlsx", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ReportingHandlerTestSuite) TestDashboard() {
	summary := &domain.DashboardSummary{
		ProductCount:   2,
		LowStockCount:  1,
		InventoryValue: decimal.NewFromInt(4300),
	}
	s.reportingSvc.On("DashboardSummary", mock.Anything).Return(summary, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/dashboard", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp domain.DashboardSummary
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(2, resp.ProductCount)
	s.True(resp.InventoryValue.Equal(decimal.NewFromInt(4300)))
}
