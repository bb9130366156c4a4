package earnings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

func TestAdjustEarnings(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	sellerWith := func(t *testing.T, d *earningsTestDeps, cents int64) *entity.User {
		seller := &entity.User{ID: 7, Role: entity.RoleSeller, IsActive: true}
		if cents != 0 {
			d.time.EXPECT().Now().Return(fixedTime).Once()
			seller.SetEarnings(cents, d.time)
		}
		return seller
	}

	t.Run("Add ledgers the delta as given", func(t *testing.T) {
		d := newEarningsTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		seller := sellerWith(t, d, 1000)
		d.time.EXPECT().Now().Return(fixedTime)
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(seller, nil).Once()

		d.ledger.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *entity.SellerEarning) bool {
			return e.SellerID == 7 && e.OrderID == nil && e.AmountCents == 2500
		})).Return(nil).Once()
		d.txUsers.EXPECT().AddEarnings(mock.Anything, uint64(7), int64(2500)).
			Return(int64(3500), nil).Once()

		updated, err := d.service().AdjustEarnings(ctx, 7, "25.00", usecase.EarningsOpAdd)
		require.NoError(t, err)
		assert.Equal(t, "35.00", updated.GetEarnings())
	})

	t.Run("Set ledgers the delta from the current value", func(t *testing.T) {
		d := newEarningsTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		seller := sellerWith(t, d, 4000)
		d.time.EXPECT().Now().Return(fixedTime)
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(seller, nil).Once()

		// set to 25.00 from 40.00 must ledger -15.00
		d.ledger.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *entity.SellerEarning) bool {
			return e.OrderID == nil && e.AmountCents == -1500
		})).Return(nil).Once()
		d.txUsers.EXPECT().AddEarnings(mock.Anything, uint64(7), int64(-1500)).
			Return(int64(2500), nil).Once()

		updated, err := d.service().AdjustEarnings(ctx, 7, "25.00", usecase.EarningsOpSet)
		require.NoError(t, err)
		assert.Equal(t, "25.00", updated.GetEarnings())
	})

	t.Run("Negative amount is rejected by the parser", func(t *testing.T) {
		d := newEarningsTestDeps(t)

		_, err := d.service().AdjustEarnings(ctx, 7, "-5.00", usecase.EarningsOpSet)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Adjustment driving earnings negative rolls back", func(t *testing.T) {
		// The earnings read and the atomic increment can race a concurrent
		// adjustment; a negative resulting total must abort the whole thing.
		d := newEarningsTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		seller := sellerWith(t, d, 1000)
		d.time.EXPECT().Now().Return(fixedTime)
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(seller, nil).Once()

		d.ledger.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
		d.txUsers.EXPECT().AddEarnings(mock.Anything, uint64(7), int64(-500)).
			Return(int64(-500), nil).Once()

		_, err := d.service().AdjustEarnings(ctx, 7, "5.00", usecase.EarningsOpSet)
		assert.ErrorIs(t, err, errs.ErrNegativeEarnings)
	})

	t.Run("Non-seller target is rejected", func(t *testing.T) {
		d := newEarningsTestDeps(t)

		buyer := &entity.User{ID: 10, Role: entity.RoleBuyer, IsActive: true}
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(10)).Return(buyer, nil).Once()

		_, err := d.service().AdjustEarnings(ctx, 10, "25.00", usecase.EarningsOpAdd)
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}
