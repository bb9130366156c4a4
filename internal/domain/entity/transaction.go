package entity

import (
	"time"
)

// TransactionStatus is the verification state of a payment transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusVerified TransactionStatus = "verified"
	TransactionStatusFailed   TransactionStatus = "failed"
)

// Transaction is one logical payment attempt against an order. A new row is
// appended per payment-proof submission; webhook reconciliation flips the
// latest row for the order to verified or failed.
type Transaction struct {
	ID           uint64
	OrderID      uint64
	UserID       uint64
	AmountCents  int64
	ExternalTxID string
	Proof        string
	Status       TransactionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetAmount returns the transaction amount as a decimal string
func (t *Transaction) GetAmount() string {
	return CentsToString(t.AmountCents)
}
