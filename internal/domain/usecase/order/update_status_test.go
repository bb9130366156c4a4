package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
)

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	seller := &entity.User{ID: 7, Role: entity.RoleSeller}
	superuser := &entity.User{ID: 99, Role: entity.RoleSuperuser}

	pendingOrder := func() *entity.Order {
		return &entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending}
	}

	t.Run("Seller claims a pending order", func(t *testing.T) {
		d := newOrderTestDeps(t)

		sellerID := seller.ID
		claimed := &entity.Order{ID: 1, BuyerID: 10, SellerID: &sellerID, Status: entity.OrderStatusProcessing}

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()
		d.orderRepo.EXPECT().Claim(mock.Anything, uint64(1), seller.ID).Return(nil).Once()
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(claimed, nil).Once()

		order, err := d.service().UpdateStatus(ctx, seller, 1, entity.OrderStatusProcessing, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusProcessing, order.Status)
		require.NotNil(t, order.SellerID)
		assert.Equal(t, seller.ID, *order.SellerID)
	})

	t.Run("Losing the claim race returns conflict", func(t *testing.T) {
		d := newOrderTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()
		d.orderRepo.EXPECT().Claim(mock.Anything, uint64(1), seller.ID).
			Return(errs.ErrOrderAlreadyClaimed).Once()

		_, err := d.service().UpdateStatus(ctx, seller, 1, entity.OrderStatusProcessing, 0)
		assert.ErrorIs(t, err, errs.ErrOrderAlreadyClaimed)
	})

	t.Run("Seller cannot claim on behalf of another seller", func(t *testing.T) {
		d := newOrderTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()

		_, err := d.service().UpdateStatus(ctx, seller, 1, entity.OrderStatusProcessing, 8)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Superuser assigns an explicit seller", func(t *testing.T) {
		d := newOrderTestDeps(t)

		assignee := uint64(8)
		claimed := &entity.Order{ID: 1, BuyerID: 10, SellerID: &assignee, Status: entity.OrderStatusProcessing}

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()
		d.orderRepo.EXPECT().Claim(mock.Anything, uint64(1), assignee).Return(nil).Once()
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(claimed, nil).Once()

		order, err := d.service().UpdateStatus(ctx, superuser, 1, entity.OrderStatusProcessing, assignee)
		require.NoError(t, err)
		assert.Equal(t, assignee, *order.SellerID)
	})

	t.Run("Assigned seller completes their order", func(t *testing.T) {
		d := newOrderTestDeps(t)

		sellerID := seller.ID
		processing := &entity.Order{ID: 1, BuyerID: 10, SellerID: &sellerID, Status: entity.OrderStatusProcessing}
		completed := &entity.Order{ID: 1, BuyerID: 10, SellerID: &sellerID, Status: entity.OrderStatusCompleted}

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(processing, nil).Once()
		d.orderRepo.EXPECT().UpdateStatus(mock.Anything, uint64(1),
			entity.OrderStatusProcessing, entity.OrderStatusCompleted).Return(nil).Once()
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(completed, nil).Once()

		order, err := d.service().UpdateStatus(ctx, seller, 1, entity.OrderStatusCompleted, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	})

	t.Run("Seller cannot touch another seller's order", func(t *testing.T) {
		d := newOrderTestDeps(t)

		otherSeller := uint64(8)
		foreign := &entity.Order{ID: 1, BuyerID: 10, SellerID: &otherSeller, Status: entity.OrderStatusProcessing}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(foreign, nil).Once()

		_, err := d.service().UpdateStatus(ctx, seller, 1, entity.OrderStatusCompleted, 0)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Illegal transition is rejected", func(t *testing.T) {
		d := newOrderTestDeps(t)

		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(pendingOrder(), nil).Once()

		_, err := d.service().UpdateStatus(ctx, superuser, 1, entity.OrderStatusCompleted, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Terminal status never transitions", func(t *testing.T) {
		d := newOrderTestDeps(t)

		done := &entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusCompleted}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(done, nil).Once()

		_, err := d.service().UpdateStatus(ctx, superuser, 1, entity.OrderStatusCancelled, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Unknown status is rejected without a read", func(t *testing.T) {
		d := newOrderTestDeps(t)

		_, err := d.service().UpdateStatus(ctx, superuser, 1, entity.OrderStatus("shipped"), 0)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("Concurrent transition surfaces as conflict", func(t *testing.T) {
		d := newOrderTestDeps(t)

		sellerID := seller.ID
		processing := &entity.Order{ID: 1, BuyerID: 10, SellerID: &sellerID, Status: entity.OrderStatusProcessing}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(processing, nil).Once()
		d.orderRepo.EXPECT().UpdateStatus(mock.Anything, uint64(1),
			entity.OrderStatusProcessing, entity.OrderStatusCompleted).Return(errs.ErrConflict).Once()

		_, err := d.service().UpdateStatus(ctx, seller, 1, entity.OrderStatusCompleted, 0)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}
