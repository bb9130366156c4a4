package entity

import (
	"time"
)

// SellerEarning is one append-only ledger row. OrderID is nil for manual
// adjustments; for those the amount records the applied delta so the sum of
// a seller's ledger always reconciles with the user's cumulative earnings.
type SellerEarning struct {
	ID          uint64
	SellerID    uint64
	OrderID     *uint64
	AmountCents int64
	Note        string
	CreatedAt   time.Time
}

// GetAmount returns the ledger amount as a decimal string
func (e *SellerEarning) GetAmount() string {
	return CentsToString(e.AmountCents)
}
