package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	coreport "github.com/example/marketplace/internal/domain/port/core"
	paymentport "github.com/example/marketplace/internal/domain/port/payment"
)

// prepayTTLSeconds is how long a provider checkout reference stays valid
const prepayTTLSeconds = 3600

// providerOrderBody is the request body sent to the provider
type providerOrderBody struct {
	MerchantTradeNo string `json:"merchantTradeNo"`
	OrderAmount     string `json:"orderAmount"`
	Currency        string `json:"currency"`
	Description     string `json:"goodsName"`
}

// SimulatedProviderClient implements the ProviderClient port. It builds and
// signs the request exactly as the real integration would, then short-
// circuits the network call and fabricates the provider response; payment
// gateway traffic is out of scope and only the bookkeeping around it counts.
type SimulatedProviderClient struct {
	signer       paymentport.Signer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSimulatedProviderClient creates the stub provider client
func NewSimulatedProviderClient(signer paymentport.Signer, timeProvider coreport.TimeProvider, logger coreport.Logger) *SimulatedProviderClient {
	return &SimulatedProviderClient{
		signer:       signer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ paymentport.ProviderClient = (*SimulatedProviderClient)(nil)

// CreateOrder signs a payment-order request and returns the provider's
// checkout reference
func (c *SimulatedProviderClient) CreateOrder(ctx context.Context, req paymentport.ProviderOrderRequest) (*paymentport.ProviderOrder, error) {
	body, err := json.Marshal(providerOrderBody{
		MerchantTradeNo: req.MerchantTradeNo,
		OrderAmount:     centsToDecimal(req.AmountCents),
		Currency:        req.Currency,
		Description:     req.Description,
	})
	if err != nil {
		return nil, err
	}

	now := c.timeProvider.Now()
	timestamp := strconv.FormatInt(now.UnixMilli(), 10)
	nonce, err := randomNonce()
	if err != nil {
		return nil, err
	}
	signature := c.signer.Sign(timestamp, nonce, string(body))

	c.logger.Debug("Provider request prepared", map[string]any{
		"trade_ref": req.MerchantTradeNo,
		"timestamp": timestamp,
		"nonce":     nonce,
		"signature": signature[:16] + "...",
	})

	// The outbound HTTP call would go here; the response below is simulated.
	prepayID := fmt.Sprintf("prepay_%s_%s", req.MerchantTradeNo, nonce[:8])
	return &paymentport.ProviderOrder{
		PrepayID:    prepayID,
		CheckoutURL: fmt.Sprintf("https://pay.example.com/checkout/%s", prepayID),
		ExpiresAt:   now.Unix() + prepayTTLSeconds,
	}, nil
}

// randomNonce returns a 32-char hex nonce
func randomNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// centsToDecimal formats cents as a plain two-decimal string for the wire
func centsToDecimal(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
