package accounting

import (
	"testing"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestRecordStatusAtSale(t *testing.T) {
	testCases := []struct {
		name     string
		total    decimal.Decimal
		paid     decimal.Decimal
		expected domain.RecordStatus
	}{
		{"nothing paid", d(10000), d(0), domain.RecordStatusPending},
		{"part paid", d(10000), d(4000), domain.RecordStatusPartial},
		{"fully paid credit sale", d(10000), d(10000), domain.RecordStatusCleared},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RecordStatusAtSale(tc.total, tc.paid))
		})
	}
}

func TestRecordStatusAfterPayment(t *testing.T) {
	testCases := []struct {
		name      string
		paid      decimal.Decimal
		remaining decimal.Decimal
		expected  domain.RecordStatus
	}{
		{"zero payment on unpaid record", d(0), d(500), domain.RecordStatusPending},
		{"partially paid", d(100), d(400), domain.RecordStatusPartial},
		{"exactly paid", d(500), d(0), domain.RecordStatusCleared},
		{"over paid", d(600), d(-100), domain.RecordStatusCleared},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RecordStatusAfterPayment(tc.paid, tc.remaining))
		})
	}
}

func TestSaleStatus(t *testing.T) {
	assert.Equal(t, domain.PaymentStatusPaid, SaleStatus(d(100), d(100)))
	assert.Equal(t, domain.PaymentStatusPartial, SaleStatus(d(100), d(40)))
	assert.Equal(t, domain.PaymentStatusPending, SaleStatus(d(100), d(0)))
}

func TestSaleStatusForRecord(t *testing.T) {
	assert.Equal(t, domain.PaymentStatusPaid, SaleStatusForRecord(domain.RecordStatusCleared))
	assert.Equal(t, domain.PaymentStatusPartial, SaleStatusForRecord(domain.RecordStatusPartial))
	assert.Equal(t, domain.PaymentStatusPending, SaleStatusForRecord(domain.RecordStatusPending))
}

func TestNeedsCreditRecord(t *testing.T) {
	assert.False(t, NeedsCreditRecord(domain.PaymentMethodCash, d(100), d(100)))
	assert.True(t, NeedsCreditRecord(domain.PaymentMethodCash, d(100), d(99)))
	assert.True(t, NeedsCreditRecord(domain.PaymentMethodCredit, d(100), d(100)))
	assert.False(t, NeedsCreditRecord(domain.PaymentMethodKBZPay, d(100), d(100)))
}

func TestSeedPaymentMethod(t *testing.T) {
	assert.Equal(t, domain.PaymentMethodCash, SeedPaymentMethod(domain.PaymentMethodCredit))
	assert.Equal(t, domain.PaymentMethodKBZPay, SeedPaymentMethod(domain.PaymentMethodKBZPay))
	assert.Equal(t, domain.PaymentMethodCash, SeedPaymentMethod(domain.PaymentMethodCash))
}

func TestLineTotalAndMargin(t *testing.T) {
	assert.True(t, d(10000).Equal(LineTotal(10, d(1000))))
	assert.True(t, d(6000).Equal(Remaining(d(10000), d(4000))))
	assert.True(t, decimal.NewFromFloat(20).Equal(MarginPercent(d(300000), d(1500000))))
	assert.True(t, decimal.Zero.Equal(MarginPercent(d(10), d(0))))
}
