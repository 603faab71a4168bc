package domain

import "time"

// MovementType is the direction of a stock change.
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

const (
	ReasonSale             = "Sale"
	ReasonManualAdjustment = "Manual adjustment"
)

// StockMovement is an immutable audit entry for a change in product stock.
type StockMovement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason"`
	Reference string       `json:"reference,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	CreatedBy string       `json:"createdBy"`
}

// SignedQuantity returns the movement as a stock delta.
func (m StockMovement) SignedQuantity() int {
	if m.Type == MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}
