package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type creditDebitService struct {
	BaseService
	store *StateContainer
}

// NewCreditDebitService creates the credit/debit record service.
func NewCreditDebitService(store *StateContainer) portssvc.CreditDebitSvcFacade {
	return &creditDebitService{store: store}
}

func (s *creditDebitService) GetRecordByID(ctx context.Context, recordID string) (*domain.CreditDebitRecord, error) {
	var found domain.CreditDebitRecord
	err := s.store.View(func(st *domain.State) error {
		i := st.RecordIndex(recordID)
		if i < 0 {
			return notFound("credit/debit record", recordID)
		}
		found = copyRecord(st.CreditDebitRecords[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (s *creditDebitService) ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.CreditDebitRecord, error) {
	records := []domain.CreditDebitRecord{}
	s.store.Read(func(st *domain.State) {
		for _, r := range st.CreditDebitRecords {
			if params.Status != "" && string(r.Status) != params.Status {
				continue
			}
			if params.CustomerID != "" && r.CustomerID != params.CustomerID {
				continue
			}
			records = append(records, copyRecord(r))
		}
	})
	return records, nil
}

func (s *creditDebitService) CreditSummary(ctx context.Context) (*domain.CreditSummary, error) {
	now := s.store.Now()
	summary := &domain.CreditSummary{
		TotalOutstanding: decimal.Zero,
		TotalCollected:   decimal.Zero,
	}
	s.store.Read(func(st *domain.State) {
		for _, r := range st.CreditDebitRecords {
			summary.TotalRecords++
			switch r.Status {
			case domain.RecordStatusPending:
				summary.PendingCount++
			case domain.RecordStatusPartial:
				summary.PartialCount++
			case domain.RecordStatusCleared:
				summary.ClearedCount++
			}
			if r.IsOverdue(now) {
				summary.OverdueCount++
			}
			if !r.IsCleared() {
				summary.TotalOutstanding = summary.TotalOutstanding.Add(r.RemainingAmount)
			}
			summary.TotalCollected = summary.TotalCollected.Add(r.PaidAmount)
		}
	})
	return summary, nil
}

func (s *creditDebitService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.CreditDebitRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.store.Now()
	recordID := s.store.NewID()
	paymentID := s.store.NewID()

	var created domain.CreditDebitRecord
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		si := st.SaleIndex(req.SaleID)
		if si < 0 {
			return notFound("sale", req.SaleID)
		}
		if st.RecordIndexBySale(req.SaleID) >= 0 {
			return fmt.Errorf("credit/debit record for sale %q: %w", req.SaleID, apperrors.ErrDuplicate)
		}
		sale := st.Sales[si]

		record := domain.CreditDebitRecord{
			ID:              recordID,
			SaleID:          sale.ID,
			CustomerID:      sale.CustomerID,
			CustomerName:    sale.CustomerName,
			CustomerPhone:   sale.CustomerPhone,
			TotalAmount:     sale.TotalAmount,
			PaidAmount:      sale.PaidAmount,
			RemainingAmount: accounting.Remaining(sale.TotalAmount, sale.PaidAmount),
			Status:          accounting.RecordStatusAtSale(sale.TotalAmount, sale.PaidAmount),
			Payments:        []domain.Payment{},
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if req.DueDate != nil {
			due := req.DueDate.UTC()
			record.DueDate = &due
		}
		if sale.PaidAmount.GreaterThan(decimal.Zero) {
			record.Payments = append(record.Payments, domain.Payment{
				ID:            paymentID,
				Amount:        sale.PaidAmount,
				PaymentDate:   sale.SaleDate,
				PaymentMethod: accounting.SeedPaymentMethod(sale.PaymentMethod),
				KBZPayPhone:   sale.KBZPayPhone,
			})
		}

		st.CreditDebitRecords = append(st.CreditDebitRecords, record)
		created = copyRecord(record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Credit/debit record created",
		slog.String("record_id", created.ID),
		slog.String("sale_id", created.SaleID))
	return &created, nil
}

func (s *creditDebitService) AddPayment(ctx context.Context, recordID string, req dto.AddPaymentRequest) (*domain.CreditDebitRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := checkMoney("payment amount", req.Amount); err != nil {
		return nil, err
	}

	now := s.store.Now()
	payment := domain.Payment{
		ID:            s.store.NewID(),
		Amount:        req.Amount,
		PaymentDate:   now,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		KBZPayPhone:   req.KBZPayPhone,
		Notes:         req.Notes,
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = req.PaymentDate.UTC()
	}

	var updated domain.CreditDebitRecord
	err := s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.RecordIndex(recordID)
		if i < 0 {
			return notFound("credit/debit record", recordID)
		}
		record := &st.CreditDebitRecords[i]

		record.Payments = append(record.Payments, payment)
		record.PaidAmount = record.PaidAmount.Add(payment.Amount)
		record.RemainingAmount = accounting.Remaining(record.TotalAmount, record.PaidAmount)
		record.Status = accounting.RecordStatusAfterPayment(record.PaidAmount, record.RemainingAmount)
		record.UpdatedAt = now

		if si := st.SaleIndex(record.SaleID); si >= 0 {
			st.Sales[si].PaidAmount = record.PaidAmount
			st.Sales[si].PaymentStatus = accounting.SaleStatusForRecord(record.Status)
		}
		if record.CustomerID != "" {
			if ci := st.CustomerIndex(record.CustomerID); ci >= 0 {
				st.Customers[ci].CreditBalance = st.Customers[ci].CreditBalance.Sub(payment.Amount)
			}
		}

		updated = copyRecord(*record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment applied",
		slog.String("record_id", recordID),
		slog.String("amount", payment.Amount.String()),
		slog.String("status", string(updated.Status)))
	return &updated, nil
}

func (s *creditDebitService) ClearRecord(ctx context.Context, recordID string) (*domain.CreditDebitRecord, error) {
	current, err := s.GetRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if current.IsCleared() {
		return current, nil
	}

	now := s.store.Now()
	var updated domain.CreditDebitRecord
	err = s.store.Mutate(ctx, func(st *domain.State) error {
		i := st.RecordIndex(recordID)
		if i < 0 {
			return notFound("credit/debit record", recordID)
		}
		record := &st.CreditDebitRecords[i]
		if record.IsCleared() {
			updated = copyRecord(*record)
			return nil
		}

		outstanding := record.RemainingAmount
		record.PaidAmount = record.TotalAmount
		record.RemainingAmount = decimal.Zero
		record.Status = domain.RecordStatusCleared
		record.UpdatedAt = now

		if si := st.SaleIndex(record.SaleID); si >= 0 {
			st.Sales[si].PaidAmount = record.TotalAmount
			st.Sales[si].PaymentStatus = domain.PaymentStatusPaid
		}
		if record.CustomerID != "" {
			if ci := st.CustomerIndex(record.CustomerID); ci >= 0 {
				st.Customers[ci].CreditBalance = st.Customers[ci].CreditBalance.Sub(outstanding)
			}
		}

		updated = copyRecord(*record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Credit/debit record cleared", slog.String("record_id", recordID))
	return &updated, nil
}

func copyRecord(r domain.CreditDebitRecord) domain.CreditDebitRecord {
	r.Payments = slices.Clone(r.Payments)
	if r.Payments == nil {
		r.Payments = []domain.Payment{}
	}
	if r.DueDate != nil {
		due := *r.DueDate
		r.DueDate = &due
	}
	return r
}
