package usecase

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// EarningsOp selects the manual adjustment mode
type EarningsOp string

const (
	EarningsOpAdd EarningsOp = "add"
	EarningsOpSet EarningsOp = "set"
)

// SellerInput carries admin-managed seller fields
type SellerInput struct {
	Email         string
	Password      string
	WalletAddress string
	IsActive      *bool
}

// EarningsUseCase defines the earnings ledger and admin operations
type EarningsUseCase interface {
	// AssignSale appends a ledger row and increments the seller's cumulative
	// earnings as one atomic unit.
	AssignSale(ctx context.Context, sellerID, orderID uint64, amount string) (*entity.SellerEarning, error)

	// AdjustEarnings applies a manual correction. Every adjustment still writes
	// a ledger row (with no order reference) so the reconciliation invariant
	// holds on all paths.
	AdjustEarnings(ctx context.Context, sellerID uint64, amount string, op EarningsOp) (*entity.User, error)

	// ListSellers lists seller accounts
	ListSellers(ctx context.Context) ([]*entity.User, error)

	// CreateSeller registers a seller-role account
	CreateSeller(ctx context.Context, input SellerInput) (*entity.User, error)

	// UpdateSeller updates wallet, password, or active flag of a seller
	UpdateSeller(ctx context.Context, sellerID uint64, input SellerInput) (*entity.User, error)

	// DeactivateSeller soft-deactivates a seller account
	DeactivateSeller(ctx context.Context, sellerID uint64) error

	// Analytics aggregates the marketplace snapshot
	Analytics(ctx context.Context) (*entity.AnalyticsSnapshot, error)
}
