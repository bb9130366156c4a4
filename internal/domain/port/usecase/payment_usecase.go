package usecase

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// PaymentOrder is the checkout reference handed back to the buyer
type PaymentOrder struct {
	OrderID     uint64
	PrepayID    string
	CheckoutURL string
	Amount      string
	Currency    string
}

// WebhookRequest is the raw inbound webhook with its signature headers
type WebhookRequest struct {
	Timestamp string
	Nonce     string
	Signature string
	Body      []byte
}

// PaymentStatus pairs the order state with the latest transaction state
type PaymentStatus struct {
	OrderID           uint64
	OrderStatus       entity.OrderStatus
	TransactionStatus entity.TransactionStatus
	Amount            string
}

// PaymentUseCase defines the payment bridge operations
type PaymentUseCase interface {
	// CreatePayment builds a signed provider order for a buyer-owned order and
	// stores the returned prepay id on it.
	CreatePayment(ctx context.Context, buyerID, orderID uint64, currency string) (*PaymentOrder, error)

	// HandleWebhook verifies the provider signature (failing closed), parses
	// the payload, and reconciles PAY_SUCCESS into the order engine: order to
	// processing, latest transaction to verified.
	HandleWebhook(ctx context.Context, req WebhookRequest) error

	// GetPaymentStatus reports payment progress for a buyer-owned order
	GetPaymentStatus(ctx context.Context, actor *entity.User, orderID uint64) (*PaymentStatus, error)
}
