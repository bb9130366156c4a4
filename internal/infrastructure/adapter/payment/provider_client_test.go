package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	paymentport "github.com/example/marketplace/internal/domain/port/payment"
	coremocks "github.com/example/marketplace/mocks/port/core"
)

func TestSimulatedProviderClient(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newClient := func(t *testing.T) *SimulatedProviderClient {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		return NewSimulatedProviderClient(NewHMACSigner("merchant-secret"), mockTime, mockLogger)
	}

	t.Run("Returns a checkout reference tied to the trade ref", func(t *testing.T) {
		client := newClient(t)

		order, err := client.CreateOrder(context.Background(), paymentport.ProviderOrderRequest{
			MerchantTradeNo: "MKT-1-1700000000",
			AmountCents:     4600,
			Currency:        "USDT",
			Description:     "marketplace order 1",
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(order.PrepayID, "prepay_MKT-1-1700000000_"))
		assert.Contains(t, order.CheckoutURL, order.PrepayID)
		assert.Equal(t, fixedTime.Unix()+prepayTTLSeconds, order.ExpiresAt)
	})

	t.Run("Nonces keep prepay ids unique", func(t *testing.T) {
		first, err := newClient(t).CreateOrder(context.Background(), paymentport.ProviderOrderRequest{
			MerchantTradeNo: "MKT-1-1700000000", AmountCents: 100, Currency: "USDT",
		})
		require.NoError(t, err)
		second, err := newClient(t).CreateOrder(context.Background(), paymentport.ProviderOrderRequest{
			MerchantTradeNo: "MKT-1-1700000000", AmountCents: 100, Currency: "USDT",
		})
		require.NoError(t, err)

		assert.NotEqual(t, first.PrepayID, second.PrepayID)
	})
}

func TestCentsToDecimal(t *testing.T) {
	assert.Equal(t, "46.00", centsToDecimal(4600))
	assert.Equal(t, "0.05", centsToDecimal(5))
	assert.Equal(t, "10.15", centsToDecimal(1015))
}
