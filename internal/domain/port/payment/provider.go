package payment

import (
	"context"
)

// ProviderOrderRequest is the outbound payment-order creation request
type ProviderOrderRequest struct {
	MerchantTradeNo string
	AmountCents     int64
	Currency        string
	Description     string
}

// ProviderOrder is the provider's checkout reference for a created order
type ProviderOrder struct {
	PrepayID    string
	CheckoutURL string
	ExpiresAt   int64
}

// ProviderClient creates payment orders against the external provider. The
// network call sits behind this port; the shipped adapter simulates the
// provider and only the local bookkeeping around it is part of the core.
type ProviderClient interface {
	CreateOrder(ctx context.Context, req ProviderOrderRequest) (*ProviderOrder, error)
}

// Signer signs and verifies provider payloads. The scheme is HMAC-SHA512
// over "timestamp\nnonce\nbody\n", hex-encoded and upper-cased.
type Signer interface {
	Sign(timestamp, nonce, body string) string
	Verify(timestamp, nonce, body, signature string) bool
}
