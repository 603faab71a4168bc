package services

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
)

// CreditDebitReaderSvc defines read operations for credit/debit records
type CreditDebitReaderSvc interface {
	GetRecordByID(ctx context.Context, recordID string) (*domain.CreditDebitRecord, error)
	ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.CreditDebitRecord, error)

	// CreditSummary totals the records by status.
	CreditSummary(ctx context.Context) (*domain.CreditSummary, error)
}

// CreditDebitWriterSvc defines write operations for credit/debit records
type CreditDebitWriterSvc interface {
	// CreateRecord registers a record for an existing sale without touching balances.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.CreditDebitRecord, error)

	// AddPayment appends a payment, recomputes the record, propagates the new
	// amounts to the sale and reduces the customer's balance by the amount.
	AddPayment(ctx context.Context, recordID string, req dto.AddPaymentRequest) (*domain.CreditDebitRecord, error)

	// ClearRecord settles the record in full without appending a payment.
	// Clearing an already cleared record changes nothing.
	ClearRecord(ctx context.Context, recordID string) (*domain.CreditDebitRecord, error)
}

// CreditDebitSvcFacade combines all credit/debit service interfaces
type CreditDebitSvcFacade interface {
	CreditDebitReaderSvc
	CreditDebitWriterSvc
}
