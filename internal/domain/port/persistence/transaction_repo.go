package persistence

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// TransactionRepository defines persistence operations for payment transactions
type TransactionRepository interface {
	// Create appends a new transaction row
	Create(ctx context.Context, transaction *entity.Transaction) error

	// LatestByOrder returns the most recent transaction for the order
	LatestByOrder(ctx context.Context, orderID uint64) (*entity.Transaction, error)

	// UpdateStatus sets the verification status of a transaction
	UpdateStatus(ctx context.Context, id uint64, status entity.TransactionStatus) error
}

// EarningRepository defines persistence operations for the earnings ledger
type EarningRepository interface {
	// Append adds one ledger row; the ledger is append-only
	Append(ctx context.Context, earning *entity.SellerEarning) error

	// SumBySeller returns the ledgered total for a seller in cents
	SumBySeller(ctx context.Context, sellerID uint64) (int64, error)
}
