package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	ledgerSuite
	phone   *domain.Product
	charger *domain.Product
}

// SetupTest records three sales: two phones on 2024-05-10 (one discounted),
// one charger today on credit.
func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ledgerSuite.SetupTest()

	suite.phone = suite.seedProduct(10, 1000) // cost 600
	charger, err := suite.svc.Product.CreateProduct(suite.ctx, dto.CreateProductRequest{
		Name: "Charger", SKU: "CHG", Price: dec(200), Cost: dec(50), Stock: 4, MinStock: 5,
		CategoryID: suite.phone.CategoryID, BrandID: suite.phone.BrandID,
	})
	suite.Require().NoError(err)
	suite.charger = charger

	may := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	discount := dec(800)
	suite.sell(dto.CreateSaleRequest{ProductID: suite.phone.ID, Quantity: 2, PaidAmount: dec(2000), PaymentMethod: "cash", SaleDate: &may})
	suite.sell(dto.CreateSaleRequest{ProductID: suite.phone.ID, Quantity: 1, UnitPrice: &discount, PaidAmount: dec(800), PaymentMethod: "cash", SaleDate: &may})
	suite.sell(dto.CreateSaleRequest{ProductID: suite.charger.ID, Quantity: 2, PaymentMethod: "credit"})
}

func (suite *ReportingServiceTestSuite) sell(req dto.CreateSaleRequest) {
	_, err := suite.svc.Sale.CreateSale(suite.ctx, req)
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestSalesReport() {
	report, err := suite.svc.Reporting.SalesReport(suite.ctx, domain.ReportPeriod{})
	suite.Require().NoError(err)

	suite.Len(report.Sales, 3)
	suite.Equal(suite.charger.ID, report.Sales[0].ProductID, "newest first")
	suite.True(report.TotalRevenue.Equal(dec(3200)))
	suite.True(report.TotalPaid.Equal(dec(2800)))
	suite.True(report.Outstanding.Equal(dec(400)))
	suite.True(report.TotalCost.Equal(dec(1900)))
	suite.True(report.TotalProfit.Equal(dec(900)))
}

func (suite *ReportingServiceTestSuite) TestSalesReport_Period() {
	may := dto.ReportParams{
		From: ptr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		To:   ptr(time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)),
	}.Period()

	report, err := suite.svc.Reporting.SalesReport(suite.ctx, may)
	suite.Require().NoError(err)
	suite.Len(report.Sales, 2)
	suite.True(report.TotalRevenue.Equal(dec(2800)))
	suite.True(report.Outstanding.IsZero())
}

func (suite *ReportingServiceTestSuite) TestProductPerformance() {
	rows, err := suite.svc.Reporting.ProductPerformance(suite.ctx, domain.ReportPeriod{})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	phone := rows[0]
	suite.Equal(suite.phone.ID, phone.ProductID)
	suite.Equal(3, phone.QuantitySold)
	suite.True(phone.Revenue.Equal(dec(2800)))
	suite.True(phone.Cost.Equal(dec(1800)))
	suite.True(phone.Profit.Equal(dec(1000)))
	suite.True(phone.MarginPercent.Equal(decimal.RequireFromString("35.71")))

	charger := rows[1]
	suite.True(charger.Profit.Equal(dec(300)))
	suite.True(charger.MarginPercent.Equal(dec(75)))
}

func (suite *ReportingServiceTestSuite) TestStockReport() {
	rows, err := suite.svc.Reporting.StockReport(suite.ctx, domain.ReportPeriod{})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal(10, rows[0].InitialStock)
	suite.Equal(3, rows[0].SoldQuantity)
	suite.Equal(7, rows[0].CurrentStock)
	suite.True(rows[0].Revenue.Equal(dec(2800)))
	suite.True(rows[0].StockValue.Equal(dec(4200)))
	suite.False(rows[0].LowStock)

	suite.Equal(2, rows[1].CurrentStock)
	suite.True(rows[1].LowStock)

	today := domain.ReportPeriod{From: fixedNow.Truncate(24 * time.Hour)}
	rows, err = suite.svc.Reporting.StockReport(suite.ctx, today)
	suite.Require().NoError(err)
	suite.Zero(rows[0].SoldQuantity)
	suite.Equal(7, rows[0].InitialStock)
	suite.True(rows[0].Revenue.IsZero())
}

func (suite *ReportingServiceTestSuite) TestLowStockProducts() {
	_, err := suite.svc.Product.UpdateStock(suite.ctx, suite.phone.ID, -6)
	suite.Require().NoError(err)

	low, err := suite.svc.Reporting.LowStockProducts(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(low, 2)
	suite.Equal(suite.phone.ID, low[0].ID)
	suite.Equal(suite.charger.ID, low[1].ID)
}

func (suite *ReportingServiceTestSuite) TestDashboardSummary() {
	summary, err := suite.svc.Reporting.DashboardSummary(suite.ctx)
	suite.Require().NoError(err)

	suite.Equal(2, summary.ProductCount)
	suite.Equal(1, summary.CategoryCount)
	suite.Equal(1, summary.BrandCount)
	suite.Equal(1, summary.LowStockCount)
	suite.Equal(1, summary.TodaySalesCount)
	suite.True(summary.TodayRevenue.Equal(dec(400)))
	suite.True(summary.TotalRevenue.Equal(dec(3200)))
	suite.True(summary.TotalOutstanding.Equal(dec(400)))
	suite.True(summary.InventoryValue.Equal(dec(4300)))
}

func ptr[T any](v T) *T {
	return &v
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
