package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	persistencemocks "github.com/example/marketplace/mocks/port/persistence"
)

func TestSubmitPaymentProof(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	order := func() *entity.Order {
		return &entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending, TotalCents: 4600}
	}

	t.Run("Proof recorded with a pending transaction", func(t *testing.T) {
		d := newOrderTestDeps(t)
		transactions := persistencemocks.NewMockTransactionRepository(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(order(), nil).Once()
		d.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil).Once()
		d.uow.EXPECT().GetOrderRepository(mock.Anything).Return(d.txOrders).Once()
		d.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(transactions).Once()
		d.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		d.time.EXPECT().Now().Return(fixedTime)

		d.txOrders.EXPECT().SetPaymentProof(mock.Anything, uint64(1), "txhash0xabc", "0xabc").Return(nil).Once()
		transactions.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.OrderID == 1 &&
				tx.UserID == 10 &&
				tx.AmountCents == 4600 &&
				tx.Status == entity.TransactionStatusPending &&
				tx.Proof == "txhash0xabc"
		})).Return(nil).Once()

		err := d.service().SubmitPaymentProof(ctx, 10, 1, "txhash0xabc", "0xabc")
		require.NoError(t, err)
	})

	t.Run("Empty proof is rejected", func(t *testing.T) {
		d := newOrderTestDeps(t)

		err := d.service().SubmitPaymentProof(ctx, 10, 1, "   ", "0xabc")
		assert.ErrorIs(t, err, errs.ErrMissingProof)
	})

	t.Run("Another buyer's order reads as not found", func(t *testing.T) {
		d := newOrderTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(order(), nil).Once()

		err := d.service().SubmitPaymentProof(ctx, 11, 1, "proof", "")
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("Transaction insert failure rolls back the proof", func(t *testing.T) {
		d := newOrderTestDeps(t)
		transactions := persistencemocks.NewMockTransactionRepository(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(order(), nil).Once()
		d.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil).Once()
		d.uow.EXPECT().GetOrderRepository(mock.Anything).Return(d.txOrders).Once()
		d.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(transactions).Once()
		d.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		d.time.EXPECT().Now().Return(fixedTime)

		d.txOrders.EXPECT().SetPaymentProof(mock.Anything, uint64(1), "proof", "").Return(nil).Once()
		dbErr := errors.New("insert failed")
		transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()

		err := d.service().SubmitPaymentProof(ctx, 10, 1, "proof", "")
		assert.ErrorIs(t, err, dbErr)
	})
}
