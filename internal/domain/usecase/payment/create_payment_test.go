package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	paymentport "github.com/example/marketplace/internal/domain/port/payment"
)

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	pendingOrder := func() *entity.Order {
		return &entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending, TotalCents: 4600}
	}

	t.Run("Creates a provider order and stores the prepay id", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()
		d.time.EXPECT().Now().Return(fixedTime).Once()

		d.provider.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req paymentport.ProviderOrderRequest) bool {
			return req.MerchantTradeNo == tradeRef(1, fixedTime.Unix()) &&
				req.AmountCents == 4600 &&
				req.Currency == "USDT"
		})).Return(&paymentport.ProviderOrder{
			PrepayID:    "prepay_123",
			CheckoutURL: "https://pay.example.com/checkout/prepay_123",
		}, nil).Once()

		d.orderRepo.EXPECT().SetPrepayID(mock.Anything, uint64(1), "prepay_123").Return(nil).Once()

		payment, err := d.service().CreatePayment(ctx, 10, 1, "")
		require.NoError(t, err)
		assert.Equal(t, "prepay_123", payment.PrepayID)
		assert.Equal(t, "46.00", payment.Amount)
		assert.Equal(t, "USDT", payment.Currency)
		assert.NotEmpty(t, payment.CheckoutURL)
	})

	t.Run("Explicit currency is passed through", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()
		d.time.EXPECT().Now().Return(fixedTime).Once()
		d.provider.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req paymentport.ProviderOrderRequest) bool {
			return req.Currency == "BUSD"
		})).Return(&paymentport.ProviderOrder{PrepayID: "p"}, nil).Once()
		d.orderRepo.EXPECT().SetPrepayID(mock.Anything, uint64(1), "p").Return(nil).Once()

		payment, err := d.service().CreatePayment(ctx, 10, 1, "BUSD")
		require.NoError(t, err)
		assert.Equal(t, "BUSD", payment.Currency)
	})

	t.Run("Another buyer's order reads as not found", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()

		_, err := d.service().CreatePayment(ctx, 11, 1, "")
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("Terminal order cannot be paid", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		done := &entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusCancelled, TotalCents: 4600}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(done, nil).Once()

		_, err := d.service().CreatePayment(ctx, 10, 1, "")
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestGetPaymentStatus(t *testing.T) {
	ctx := context.Background()
	buyer := &entity.User{ID: 10, Role: entity.RoleBuyer}

	t.Run("Buyer reads their own payment status", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusProcessing, TotalCents: 4600}, nil).Once()
		d.txRepo.EXPECT().LatestByOrder(mock.Anything, uint64(1)).
			Return(&entity.Transaction{ID: 3, Status: entity.TransactionStatusVerified}, nil).Once()

		status, err := d.service().GetPaymentStatus(ctx, buyer, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusProcessing, status.OrderStatus)
		assert.Equal(t, entity.TransactionStatusVerified, status.TransactionStatus)
		assert.Equal(t, "46.00", status.Amount)
	})

	t.Run("No transaction yet leaves the status empty", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending, TotalCents: 4600}, nil).Once()
		d.txRepo.EXPECT().LatestByOrder(mock.Anything, uint64(1)).
			Return(nil, errs.ErrTransactionNotFound).Once()

		status, err := d.service().GetPaymentStatus(ctx, buyer, 1)
		require.NoError(t, err)
		assert.Empty(t, status.TransactionStatus)
	})

	t.Run("Foreign order is forbidden", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		other := &entity.User{ID: 11, Role: entity.RoleBuyer}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending}, nil).Once()

		_, err := d.service().GetPaymentStatus(ctx, other, 1)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
