package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// WalkInCustomerName labels sales without a named customer.
const WalkInCustomerName = "Walk-in Customer"

const (
	defaultSalesPageSize = 20
	maxSalesPageSize     = 200
)

type saleService struct {
	BaseService
	store *StateContainer
}

// NewSaleService creates the sale service.
func NewSaleService(store *StateContainer) portssvc.SaleSvcFacade {
	return &saleService{store: store}
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	var found domain.Sale
	err := s.store.View(func(st *domain.State) error {
		i := st.SaleIndex(saleID)
		if i < 0 {
			return notFound("sale", saleID)
		}
		found = st.Sales[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSalesPageSize
	}
	if limit > maxSalesPageSize {
		limit = maxSalesPageSize
	}

	var cursor *pagination.Cursor
	if params.NextToken != nil && *params.NextToken != "" {
		c, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		cursor = &c
	}

	period := dto.ReportParams{From: params.From, To: params.To}.Period()

	var matched []domain.Sale
	s.store.Read(func(st *domain.State) {
		for _, sale := range st.Sales {
			if !period.Contains(sale.SaleDate) {
				continue
			}
			if params.CustomerID != "" && sale.CustomerID != params.CustomerID {
				continue
			}
			if params.ProductID != "" && sale.ProductID != params.ProductID {
				continue
			}
			if params.Status != "" && string(sale.PaymentStatus) != params.Status {
				continue
			}
			matched = append(matched, sale)
		}
	})

	sortSalesNewestFirst(matched)

	page := make([]domain.Sale, 0, limit)
	var nextToken *string
	for _, sale := range matched {
		if cursor != nil && !cursor.Before(sale.SaleDate, sale.CreatedAt, sale.ID) {
			continue
		}
		if len(page) == limit {
			last := page[len(page)-1]
			token := pagination.EncodeToken(last.SaleDate, last.CreatedAt, last.ID)
			nextToken = &token
			break
		}
		page = append(page, sale)
	}

	return &dto.ListSalesResponse{
		Sales:     dto.ToSaleResponses(page),
		NextToken: nextToken,
	}, nil
}

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkMoney("paid amount", req.PaidAmount); err != nil {
		return nil, err
	}
	if req.UnitPrice != nil {
		if err := checkMoney("unit price", *req.UnitPrice); err != nil {
			return nil, err
		}
	}

	now := s.store.Now()
	method := domain.PaymentMethod(req.PaymentMethod)
	saleID := s.store.NewID()
	movementID := s.store.NewID()
	recordID := s.store.NewID()
	paymentID := s.store.NewID()

	var created domain.Sale
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		pi := st.ProductIndex(req.ProductID)
		if pi < 0 {
			return notFound("product", req.ProductID)
		}
		product := &st.Products[pi]
		if product.Stock < req.Quantity {
			return fmt.Errorf("product %q has %d in stock, %d requested: %w",
				product.ID, product.Stock, req.Quantity, apperrors.ErrInsufficientStock)
		}

		var customer *domain.Customer
		if req.CustomerID != "" {
			ci := st.CustomerIndex(req.CustomerID)
			if ci < 0 {
				return notFound("customer", req.CustomerID)
			}
			customer = &st.Customers[ci]
		}

		unitPrice := product.Price
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		total := accounting.LineTotal(req.Quantity, unitPrice)
		// Over-payment settles the sale. The excess is not tracked.
		paid := req.PaidAmount

		sale := domain.Sale{
			ID:            saleID,
			ProductID:     product.ID,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerPhone: req.CustomerPhone,
			Quantity:      req.Quantity,
			UnitPrice:     unitPrice,
			TotalAmount:   total,
			PaidAmount:    paid,
			PaymentMethod: method,
			PaymentStatus: accounting.SaleStatus(total, paid),
			KBZPayPhone:   req.KBZPayPhone,
			SaleDate:      now,
			CreatedAt:     now,
			IsPrinted:     false,
		}
		if req.SaleDate != nil {
			sale.SaleDate = req.SaleDate.UTC()
		}
		if customer != nil {
			sale.CustomerID = customer.ID
			if sale.CustomerName == "" {
				sale.CustomerName = customer.Name
			}
			if sale.CustomerPhone == "" {
				sale.CustomerPhone = customer.Phone
			}
		}
		if sale.CustomerName == "" {
			sale.CustomerName = WalkInCustomerName
		}

		product.Stock -= req.Quantity
		st.StockMovements = append(st.StockMovements, domain.StockMovement{
			ID:        movementID,
			ProductID: product.ID,
			Type:      domain.MovementOut,
			Quantity:  req.Quantity,
			Reason:    domain.ReasonSale,
			Reference: sale.ID,
			CreatedAt: now,
			CreatedBy: s.ActorID(ctx),
		})

		if customer != nil && paid.LessThan(total) {
			customer.CreditBalance = customer.CreditBalance.Add(accounting.Remaining(total, paid))
		}

		if accounting.NeedsCreditRecord(method, total, paid) {
			record := domain.CreditDebitRecord{
				ID:              recordID,
				SaleID:          sale.ID,
				CustomerID:      sale.CustomerID,
				CustomerName:    sale.CustomerName,
				CustomerPhone:   sale.CustomerPhone,
				TotalAmount:     total,
				PaidAmount:      paid,
				RemainingAmount: accounting.Remaining(total, paid),
				Status:          accounting.RecordStatusAtSale(total, paid),
				Payments:        []domain.Payment{},
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if req.DueDate != nil {
				due := req.DueDate.UTC()
				record.DueDate = &due
			}
			if paid.GreaterThan(decimal.Zero) {
				record.Payments = append(record.Payments, domain.Payment{
					ID:            paymentID,
					Amount:        paid,
					PaymentDate:   sale.SaleDate,
					PaymentMethod: accounting.SeedPaymentMethod(method),
					KBZPayPhone:   req.KBZPayPhone,
				})
			}
			st.CreditDebitRecords = append(st.CreditDebitRecords, record)
		}

		st.Sales = append(st.Sales, sale)
		created = sale
		return nil
	})
	if err != nil {
		s.LogDebug(ctx, "Sale rejected",
			slog.String("product_id", req.ProductID),
			slog.Int("quantity", req.Quantity),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", created.ID),
		slog.String("product_id", created.ProductID),
		slog.String("total", created.TotalAmount.String()),
		slog.String("status", string(created.PaymentStatus)))
	return &created, nil
}

func (s *saleService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.Sale
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.SaleIndex(saleID)
		if i < 0 {
			return notFound("sale", saleID)
		}
		sale := &st.Sales[i]
		if req.CustomerName != nil {
			sale.CustomerName = *req.CustomerName
		}
		if req.CustomerPhone != nil {
			sale.CustomerPhone = *req.CustomerPhone
		}
		if req.SaleDate != nil {
			sale.SaleDate = req.SaleDate.UTC()
		}
		updated = *sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSale leaves stock, movements, balances and records untouched.
func (s *saleService) DeleteSale(ctx context.Context, saleID string) error {
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.SaleIndex(saleID)
		if i < 0 {
			return notFound("sale", saleID)
		}
		st.Sales = slices.Delete(st.Sales, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Sale deleted", slog.String("sale_id", saleID))
	return nil
}

func (s *saleService) MarkSaleAsPrinted(ctx context.Context, saleID string) (*domain.Sale, error) {
	var updated domain.Sale
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.SaleIndex(saleID)
		if i < 0 {
			return notFound("sale", saleID)
		}
		st.Sales[i].IsPrinted = true
		updated = st.Sales[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// sortSalesNewestFirst orders by sale date, then creation time, then id, all descending.
func sortSalesNewestFirst(sales []domain.Sale) {
	slices.SortStableFunc(sales, func(a, b domain.Sale) int {
		if c := b.SaleDate.Compare(a.SaleDate); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
}
