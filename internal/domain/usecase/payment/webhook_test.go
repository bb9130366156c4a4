package payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
	coremocks "github.com/example/marketplace/mocks/port/core"
	paymentmocks "github.com/example/marketplace/mocks/port/payment"
	persistencemocks "github.com/example/marketplace/mocks/port/persistence"
)

type paymentTestDeps struct {
	uow       *persistencemocks.MockUnitOfWork
	orderRepo *persistencemocks.MockOrderRepository
	txRepo    *persistencemocks.MockTransactionRepository
	txOrders  *persistencemocks.MockOrderRepository
	txTxns    *persistencemocks.MockTransactionRepository
	provider  *paymentmocks.MockProviderClient
	signer    *paymentmocks.MockSigner
	time      *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
}

func newPaymentTestDeps(t *testing.T) *paymentTestDeps {
	d := &paymentTestDeps{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		orderRepo: persistencemocks.NewMockOrderRepository(t),
		txRepo:    persistencemocks.NewMockTransactionRepository(t),
		txOrders:  persistencemocks.NewMockOrderRepository(t),
		txTxns:    persistencemocks.NewMockTransactionRepository(t),
		provider:  paymentmocks.NewMockProviderClient(t),
		signer:    paymentmocks.NewMockSigner(t),
		time:      coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}

	d.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return d
}

func (d *paymentTestDeps) service() *Service {
	return NewService(d.uow, d.orderRepo, d.txRepo, d.provider, d.signer, d.time, d.logger)
}

func (d *paymentTestDeps) expectTx() {
	d.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil).Once()
	d.uow.EXPECT().GetOrderRepository(mock.Anything).Return(d.txOrders).Maybe()
	d.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(d.txTxns).Maybe()
}

func successBody(orderID uint64) []byte {
	return []byte(fmt.Sprintf(
		`{"bizType":"PAY","bizStatus":"PAY_SUCCESS","data":{"merchantTradeNo":"MKT-%d-1700000000","transactionId":"prov-tx-1"}}`,
		orderID))
}

func signedRequest(body []byte) usecase.WebhookRequest {
	return usecase.WebhookRequest{
		Timestamp: "1700000000000",
		Nonce:     "abcdef1234567890",
		Signature: "CAFEBABE",
		Body:      body,
	}
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Missing signature headers fail closed", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		err := d.service().HandleWebhook(ctx, usecase.WebhookRequest{Body: successBody(1)})
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Bad signature fails closed before touching the payload", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		req := signedRequest(successBody(1))
		d.signer.EXPECT().Verify(req.Timestamp, req.Nonce, string(req.Body), req.Signature).
			Return(false).Once()

		err := d.service().HandleWebhook(ctx, req)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Malformed body is rejected after signature check", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		req := signedRequest([]byte("not json"))
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		err := d.service().HandleWebhook(ctx, req)
		assert.ErrorIs(t, err, errs.ErrMalformedTradeRef)
	})

	t.Run("Malformed trade reference is rejected", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		body := []byte(`{"bizStatus":"PAY_SUCCESS","data":{"merchantTradeNo":"OTHER-1-2","transactionId":"x"}}`)
		req := signedRequest(body)
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		err := d.service().HandleWebhook(ctx, req)
		assert.ErrorIs(t, err, errs.ErrMalformedTradeRef)
	})

	t.Run("PAY_SUCCESS verifies the pending transaction and moves the order", func(t *testing.T) {
		d := newPaymentTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		req := signedRequest(successBody(1))
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		d.txOrders.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending, TotalCents: 4600}, nil).Once()
		d.txTxns.EXPECT().LatestByOrder(mock.Anything, uint64(1)).
			Return(&entity.Transaction{ID: 3, OrderID: 1, Status: entity.TransactionStatusPending}, nil).Once()
		d.txTxns.EXPECT().UpdateStatus(mock.Anything, uint64(3), entity.TransactionStatusVerified).
			Return(nil).Once()
		d.txOrders.EXPECT().UpdateStatus(mock.Anything, uint64(1),
			entity.OrderStatusPending, entity.OrderStatusProcessing).Return(nil).Once()

		err := d.service().HandleWebhook(ctx, req)
		require.NoError(t, err)
	})

	t.Run("PAY_SUCCESS with no prior proof records a verified transaction", func(t *testing.T) {
		d := newPaymentTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		d.time.EXPECT().Now().Return(fixedTime)

		req := signedRequest(successBody(1))
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		d.txOrders.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending, TotalCents: 4600}, nil).Once()
		d.txTxns.EXPECT().LatestByOrder(mock.Anything, uint64(1)).
			Return(nil, errs.ErrTransactionNotFound).Once()
		d.txTxns.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.OrderID == 1 &&
				tx.UserID == 10 &&
				tx.AmountCents == 4600 &&
				tx.ExternalTxID == "prov-tx-1" &&
				tx.Status == entity.TransactionStatusVerified
		})).Return(nil).Once()
		d.txOrders.EXPECT().UpdateStatus(mock.Anything, uint64(1),
			entity.OrderStatusPending, entity.OrderStatusProcessing).Return(nil).Once()

		err := d.service().HandleWebhook(ctx, req)
		require.NoError(t, err)
	})

	t.Run("Redelivery of an already-verified payment is a no-op", func(t *testing.T) {
		d := newPaymentTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		req := signedRequest(successBody(1))
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		claimed := uint64(7)
		d.txOrders.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, SellerID: &claimed, Status: entity.OrderStatusProcessing}, nil).Once()
		d.txTxns.EXPECT().LatestByOrder(mock.Anything, uint64(1)).
			Return(&entity.Transaction{ID: 3, OrderID: 1, Status: entity.TransactionStatusVerified}, nil).Once()

		err := d.service().HandleWebhook(ctx, req)
		require.NoError(t, err)
	})

	t.Run("PAY_SUCCESS for unknown order rolls back", func(t *testing.T) {
		d := newPaymentTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		req := signedRequest(successBody(5))
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		d.txOrders.EXPECT().GetByID(mock.Anything, uint64(5)).
			Return(nil, errs.ErrOrderNotFound).Once()

		err := d.service().HandleWebhook(ctx, req)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("PAY_CLOSED fails the pending transaction", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		body := []byte(`{"bizStatus":"PAY_CLOSED","data":{"merchantTradeNo":"MKT-1-1700000000"}}`)
		req := signedRequest(body)
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		d.txRepo.EXPECT().LatestByOrder(mock.Anything, uint64(1)).
			Return(&entity.Transaction{ID: 3, OrderID: 1, Status: entity.TransactionStatusPending}, nil).Once()
		d.txRepo.EXPECT().UpdateStatus(mock.Anything, uint64(3), entity.TransactionStatusFailed).
			Return(nil).Once()

		err := d.service().HandleWebhook(ctx, req)
		require.NoError(t, err)
	})

	t.Run("PAY_CLOSED with nothing recorded is a no-op", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		body := []byte(`{"bizStatus":"PAY_CLOSED","data":{"merchantTradeNo":"MKT-1-1700000000"}}`)
		req := signedRequest(body)
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		d.txRepo.EXPECT().LatestByOrder(mock.Anything, uint64(1)).
			Return(nil, errs.ErrTransactionNotFound).Once()

		err := d.service().HandleWebhook(ctx, req)
		require.NoError(t, err)
	})

	t.Run("Unknown business status is acknowledged and ignored", func(t *testing.T) {
		d := newPaymentTestDeps(t)

		body := []byte(`{"bizStatus":"PAY_REFUND","data":{"merchantTradeNo":"MKT-1-1700000000"}}`)
		req := signedRequest(body)
		d.signer.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(true).Once()

		err := d.service().HandleWebhook(ctx, req)
		require.NoError(t, err)
	})
}

func TestParseTradeRef(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		ref := tradeRef(42, 1700000000)
		assert.Equal(t, "MKT-42-1700000000", ref)

		orderID, err := parseTradeRef(ref)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), orderID)
	})

	t.Run("Rejects malformed references", func(t *testing.T) {
		for _, ref := range []string{
			"",
			"MKT-42",
			"MKT-42-17-00",
			"OTHER-42-1700000000",
			"MKT-0-1700000000",
			"MKT-abc-1700000000",
			"MKT-42-notaunix",
		} {
			_, err := parseTradeRef(ref)
			assert.ErrorIs(t, err, errs.ErrMalformedTradeRef, "ref %q", ref)
		}
	})
}
