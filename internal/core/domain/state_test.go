package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *State {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	s := NewState()
	s.Attributes = append(s.Attributes, Attribute{ID: "a1", Name: "Color", Type: AttributeSelect, Options: []string{"Red", "Blue"}})
	s.Products = append(s.Products, Product{ID: "p1", SKU: "SKU-1", Stock: 5, MinStock: 2, SupplierID: "s1", Attributes: map[string]any{"color": "Red"}})
	s.CreditDebitRecords = append(s.CreditDebitRecords, CreditDebitRecord{
		ID:       "r1",
		SaleID:   "sale1",
		DueDate:  &due,
		Payments: []Payment{{ID: "pay1", Amount: decimal.NewFromInt(10)}},
	})
	s.CompanyProfile = &CompanyProfile{ID: "c1", Name: "Shop"}
	return s
}

func TestStateClone_IsDeep(t *testing.T) {
	original := sampleState()
	clone := original.Clone()

	clone.Attributes[0].Options[0] = "Green"
	clone.Products[0].Attributes["color"] = "Blue"
	clone.Products[0].Stock = 1
	clone.CreditDebitRecords[0].Payments = append(clone.CreditDebitRecords[0].Payments, Payment{ID: "pay2"})
	clone.CreditDebitRecords[0].Payments[0].Amount = decimal.NewFromInt(99)
	*clone.CreditDebitRecords[0].DueDate = time.Time{}
	clone.CompanyProfile.Name = "Other"

	assert.Equal(t, "Red", original.Attributes[0].Options[0])
	assert.Equal(t, "Red", original.Products[0].Attributes["color"])
	assert.Equal(t, 5, original.Products[0].Stock)
	require.Len(t, original.CreditDebitRecords[0].Payments, 1)
	assert.True(t, decimal.NewFromInt(10).Equal(original.CreditDebitRecords[0].Payments[0].Amount))
	assert.False(t, original.CreditDebitRecords[0].DueDate.IsZero())
	assert.Equal(t, "Shop", original.CompanyProfile.Name)
}

func TestStateIndexes(t *testing.T) {
	s := sampleState()

	assert.Equal(t, 0, s.ProductIndex("p1"))
	assert.Equal(t, -1, s.ProductIndex("missing"))
	assert.Equal(t, 0, s.ProductIndexBySKU("SKU-1"))
	assert.Equal(t, 0, s.RecordIndexBySale("sale1"))
	assert.True(t, s.SupplierInUse("s1"))
	assert.False(t, s.SupplierInUse("s2"))
}

func TestNewState_HasEmptyCollections(t *testing.T) {
	s := NewState()
	assert.NotNil(t, s.Products)
	assert.NotNil(t, s.StockMovements)
	assert.NotNil(t, s.Users)
	assert.Nil(t, s.CompanyProfile)
}

func TestProductStockFlags(t *testing.T) {
	testCases := []struct {
		name     string
		stock    int
		minStock int
		low      bool
		out      bool
	}{
		{"above minimum", 10, 5, false, false},
		{"at minimum", 5, 5, true, false},
		{"empty", 0, 5, true, true},
		{"negative after manual adjustment", -2, 0, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Stock: tc.stock, MinStock: tc.minStock}
			assert.Equal(t, tc.low, p.IsLowStock())
			assert.Equal(t, tc.out, p.IsOutOfStock())
		})
	}
}

func TestReportPeriodContains(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	p := ReportPeriod{From: from, To: to}

	assert.True(t, p.Contains(from))
	assert.True(t, p.Contains(to))
	assert.False(t, p.Contains(from.Add(-time.Second)))
	assert.False(t, p.Contains(to.Add(time.Second)))
	assert.True(t, ReportPeriod{}.Contains(time.Now()))
}

func TestStockMovementSignedQuantity(t *testing.T) {
	assert.Equal(t, 3, StockMovement{Type: MovementIn, Quantity: 3}.SignedQuantity())
	assert.Equal(t, -3, StockMovement{Type: MovementOut, Quantity: 3}.SignedQuantity())
}
