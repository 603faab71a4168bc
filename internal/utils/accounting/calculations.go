package accounting

import (
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineTotal is quantity × unit price.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Remaining is what is still owed. It goes negative on over-payment.
func Remaining(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// NeedsCreditRecord reports whether a sale opens a credit/debit record:
// it was sold on credit or was not fully paid.
func NeedsCreditRecord(method domain.PaymentMethod, total, paid decimal.Decimal) bool {
	return method == domain.PaymentMethodCredit || paid.LessThan(total)
}

// RecordStatusAtSale is the status of a record opened by a sale.
func RecordStatusAtSale(total, paid decimal.Decimal) domain.RecordStatus {
	switch {
	case paid.IsZero():
		return domain.RecordStatusPending
	case paid.LessThan(total):
		return domain.RecordStatusPartial
	default:
		return domain.RecordStatusCleared
	}
}

// RecordStatusAfterPayment is the status of a record once a payment is applied.
// A zero payment on an unpaid record leaves it pending.
func RecordStatusAfterPayment(paid, remaining decimal.Decimal) domain.RecordStatus {
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		return domain.RecordStatusCleared
	case paid.GreaterThan(decimal.Zero):
		return domain.RecordStatusPartial
	default:
		return domain.RecordStatusPending
	}
}

// SaleStatus derives a sale's payment status from its amounts.
func SaleStatus(total, paid decimal.Decimal) domain.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return domain.PaymentStatusPaid
	case paid.GreaterThan(decimal.Zero):
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusPending
	}
}

// SaleStatusForRecord maps a record status onto the originating sale.
func SaleStatusForRecord(status domain.RecordStatus) domain.PaymentStatus {
	switch status {
	case domain.RecordStatusCleared:
		return domain.PaymentStatusPaid
	case domain.RecordStatusPartial:
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusPending
	}
}

// SeedPaymentMethod is the method recorded on the payment seeded from a sale's
// up-front amount. Credit sales record the up-front amount as cash.
func SeedPaymentMethod(method domain.PaymentMethod) domain.PaymentMethod {
	if method == domain.PaymentMethodCredit {
		return domain.PaymentMethodCash
	}
	return method
}

// MarginPercent is profit as a percentage of revenue, rounded to two places.
// It is zero when there is no revenue.
func MarginPercent(profit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred).Round(2)
}
