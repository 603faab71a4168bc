package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/handlers"
	"github.com/SscSPs/inventory_ledger_app/internal/platform/config"
	"github.com/SscSPs/inventory_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "handler-test-secret"

// handlerSuite wires the real router onto mocked services.
type handlerSuite struct {
	suite.Suite
	router        *gin.Engine
	saleSvc       *MockSaleService
	reportingSvc  *MockReportingService
	userSvc       *MockUserService
	tokenSvc      *MockTokenService
	authToken     string
	testUserID    string
	testProductID string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.saleSvc = new(MockSaleService)
	s.reportingSvc = new(MockReportingService)
	s.userSvc = new(MockUserService)
	s.tokenSvc = new(MockTokenService)
	s.testUserID = "user-1"
	s.testProductID = "prod-1"

	cfg := &config.Config{
		IsProduction:      true,
		JWTSecret:         testJWTSecret,
		LoginRateLimit:    "100-M",
		CurrencyPrecision: 0,
	}
	services := &portssvc.ServiceContainer{
		Sale:         s.saleSvc,
		Reporting:    s.reportingSvc,
		User:         s.userSvc,
		TokenService: s.tokenSvc,
	}

	s.router = gin.New()
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, services))

	token, err := utils.GenerateJWT(s.testUserID, testJWTSecret, time.Hour, "test")
	s.Require().NoError(err)
	s.authToken = token
}

func (s *handlerSuite) TearDownTest() {
	s.saleSvc.AssertExpectations(s.T())
	s.reportingSvc.AssertExpectations(s.T())
	s.userSvc.AssertExpectations(s.T())
	s.tokenSvc.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type SaleHandlerTestSuite struct {
	handlerSuite
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func (s *SaleHandlerTestSuite) validRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ProductID:     s.testProductID,
		Quantity:      2,
		PaidAmount:    decimal.NewFromInt(1000),
		PaymentMethod: string(domain.PaymentMethodCash),
	}
}

func (s *SaleHandlerTestSuite) TestCreateSale_Success() {
	req := s.validRequest()
	sale := &domain.Sale{
		ID:            "sale-1",
		ProductID:     s.testProductID,
		CustomerName:  "Walk-in Customer",
		Quantity:      2,
		UnitPrice:     decimal.NewFromInt(1000),
		TotalAmount:   decimal.NewFromInt(2000),
		PaidAmount:    decimal.NewFromInt(1000),
		PaymentMethod: domain.PaymentMethodCash,
		PaymentStatus: domain.PaymentStatusPartial,
	}
	s.saleSvc.On("CreateSale", mock.Anything, mock.MatchedBy(func(r dto.CreateSaleRequest) bool {
		return r.ProductID == s.testProductID && r.Quantity == 2 && r.PaidAmount.Equal(decimal.NewFromInt(1000))
	})).Return(sale, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/sales", req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("sale-1", resp.ID)
	s.True(resp.OutstandingAmount.Equal(decimal.NewFromInt(1000)))
	s.Equal(domain.PaymentStatusPartial, resp.PaymentStatus)
}

func (s *SaleHandlerTestSuite) TestCreateSale_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"insufficient stock", fmt.Errorf("%w: only 1 left", apperrors.ErrInsufficientStock), http.StatusBadRequest},
		{"unknown product", fmt.Errorf("product %s: %w", s.testProductID, apperrors.ErrNotFound), http.StatusNotFound},
		{"validation", fmt.Errorf("%w: paid amount must not be negative", apperrors.ErrValidation), http.StatusBadRequest},
		{"storage failure", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.saleSvc.On("CreateSale", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := s.do(http.MethodPost, "/api/v1/sales", s.validRequest())

			s.Equal(tt.status, w.Code)
			var resp handlers.ErrorResponse
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.status == http.StatusInternalServerError {
				s.Equal("Failed to create sale", resp.Error)
			} else {
				s.Equal(tt.err.Error(), resp.Error)
			}
		})
	}
}

func (s *SaleHandlerTestSuite) TestCreateSale_BindingFailures() {
	missingQuantity := s.validRequest()
	missingQuantity.Quantity = 0
	badMethod := s.validRequest()
	badMethod.PaymentMethod = "cheque"
	kbzWithoutPhone := s.validRequest()
	kbzWithoutPhone.PaymentMethod = string(domain.PaymentMethodKBZPay)

	for name, req := range map[string]dto.CreateSaleRequest{
		"zero quantity":         missingQuantity,
		"unknown method":        badMethod,
		"kbz pay with no phone": kbzWithoutPhone,
	} {
		s.Run(name, func() {
			w := s.do(http.MethodPost, "/api/v1/sales", req)
			s.Equal(http.StatusBadRequest, w.Code)
			s.Contains(w.Body.String(), "Invalid request format")
		})
	}
	s.saleSvc.AssertNotCalled(s.T(), "CreateSale", mock.Anything, mock.Anything)
}

func (s *SaleHandlerTestSuite) TestRequiresBearerToken() {
	s.authToken = ""
	w := s.do(http.MethodGet, "/api/v1/sales/sale-1", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	s.authToken = "not-a-jwt"
	w = s.do(http.MethodGet, "/api/v1/sales/sale-1", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *SaleHandlerTestSuite) TestGetSale_NotFound() {
	s.saleSvc.On("GetSaleByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("sale missing: %w", apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodGet, "/api/v1/sales/missing", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SaleHandlerTestSuite) TestListSales_PassesQuery() {
	next := "2"
	s.saleSvc.On("ListSales", mock.Anything, mock.MatchedBy(func(p dto.ListSalesParams) bool {
		return p.Limit == 5 && p.Status == "pending" && p.From != nil &&
			p.From.Format("2006-01-02") == "2024-05-01"
	})).Return(&dto.ListSalesResponse{Sales: []dto.SaleResponse{}, NextToken: &next}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/sales?limit=5&status=pending&from=2024-05-01", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListSalesResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotNil(resp.NextToken)
	s.Equal("2", *resp.NextToken)
}

func (s *SaleHandlerTestSuite) TestListSales_InvalidStatus() {
	w := s.do(http.MethodGet, "/api/v1/sales?status=refunded", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *SaleHandlerTestSuite) TestDeleteSale() {
	s.saleSvc.On("DeleteSale", mock.Anything, "sale-1").Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/sales/sale-1", nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *SaleHandlerTestSuite) TestMarkPrinted() {
	s.saleSvc.On("MarkSaleAsPrinted", mock.Anything, "sale-1").
		Return(&domain.Sale{ID: "sale-1", IsPrinted: true}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/sales/sale-1/print", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.SaleResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.IsPrinted)
}
