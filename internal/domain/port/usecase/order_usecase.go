package usecase

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// OrderItemInput is one requested line of a new order
type OrderItemInput struct {
	ProductID uint64
	Quantity  int
}

// ContactInput is the buyer contact captured on the order
type ContactInput struct {
	Name  string
	Email string
	Phone string
}

// OrderUseCase defines the order lifecycle operations
type OrderUseCase interface {
	// CreateOrder verifies stock, computes the total from prices read at check
	// time, and commits the order with its line items and the stock decrements
	// as one atomic unit.
	CreateOrder(ctx context.Context, buyerID uint64, items []OrderItemInput, contact ContactInput) (*entity.Order, error)

	// ListOrders returns orders visible to the acting user
	ListOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error)

	// GetOrder returns one order if visible to the acting user
	GetOrder(ctx context.Context, actor *entity.User, orderID uint64) (*entity.Order, error)

	// UpdateStatus drives the state machine. Transitioning a pending order to
	// processing claims it for the acting seller (or an explicitly supplied
	// seller when the actor is the superuser); a lost claim race returns
	// ErrOrderAlreadyClaimed.
	UpdateStatus(ctx context.Context, actor *entity.User, orderID uint64, target entity.OrderStatus, explicitSellerID uint64) (*entity.Order, error)

	// SubmitPaymentProof records proof text and external txid on a buyer-owned
	// order and appends a pending transaction for the order total.
	SubmitPaymentProof(ctx context.Context, buyerID, orderID uint64, proof, externalTxID string) error
}
