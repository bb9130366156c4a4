package persistence

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// OrderRepository defines persistence operations for orders and their items
type OrderRepository interface {
	// Create inserts the order row together with its line items
	Create(ctx context.Context, order *entity.Order) error

	// GetByID retrieves an order with items and product names attached
	GetByID(ctx context.Context, id uint64) (*entity.Order, error)

	// ListForBuyer lists a buyer's own orders, newest first, with items
	ListForBuyer(ctx context.Context, buyerID uint64) ([]*entity.Order, error)

	// ListForSeller lists orders assigned to the seller plus the unclaimed
	// pending pool, newest first, with items
	ListForSeller(ctx context.Context, sellerID uint64) ([]*entity.Order, error)

	// ListAll lists every order, newest first, with items
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// Claim performs the atomic conditional claim that closes the seller race:
	// the update only applies while the order is still pending and unassigned,
	// and zero rows affected surfaces as ErrOrderAlreadyClaimed.
	Claim(ctx context.Context, orderID, sellerID uint64) error

	// UpdateStatus transitions the order conditioned on the expected current
	// status; zero rows affected surfaces as ErrConflict.
	UpdateStatus(ctx context.Context, orderID uint64, from, to entity.OrderStatus) error

	// SetPaymentProof records the buyer-submitted proof and external txid
	SetPaymentProof(ctx context.Context, orderID uint64, proof, externalTxID string) error

	// SetPrepayID records the provider's prepay reference on the order
	SetPrepayID(ctx context.Context, orderID uint64, prepayID string) error

	// CountByStatus aggregates order counts keyed by status
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// CompletedRevenue sums total_amount over completed orders
	CompletedRevenue(ctx context.Context) (int64, error)
}
