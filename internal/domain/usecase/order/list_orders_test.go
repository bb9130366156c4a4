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

func TestListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Buyer gets their own orders", func(t *testing.T) {
		d := newOrderTestDeps(t)

		buyer := &entity.User{ID: 10, Role: entity.RoleBuyer}
		expected := []*entity.Order{{ID: 1, BuyerID: 10}}
		d.orderRepo.EXPECT().ListForBuyer(mock.Anything, uint64(10)).Return(expected, nil).Once()

		orders, err := d.service().ListOrders(ctx, buyer)
		require.NoError(t, err)
		assert.Equal(t, expected, orders)
	})

	t.Run("Seller gets assigned orders plus the pending pool", func(t *testing.T) {
		d := newOrderTestDeps(t)

		seller := &entity.User{ID: 7, Role: entity.RoleSeller}
		d.orderRepo.EXPECT().ListForSeller(mock.Anything, uint64(7)).
			Return([]*entity.Order{}, nil).Once()

		_, err := d.service().ListOrders(ctx, seller)
		require.NoError(t, err)
	})

	t.Run("Superuser gets everything", func(t *testing.T) {
		d := newOrderTestDeps(t)

		superuser := &entity.User{ID: 99, Role: entity.RoleSuperuser}
		d.orderRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.Order{{ID: 1}, {ID: 2}}, nil).Once()

		orders, err := d.service().ListOrders(ctx, superuser)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner reads their order", func(t *testing.T) {
		d := newOrderTestDeps(t)

		buyer := &entity.User{ID: 10, Role: entity.RoleBuyer}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending}, nil).Once()

		order, err := d.service().GetOrder(ctx, buyer, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), order.ID)
	})

	t.Run("Existing but invisible order is forbidden, not missing", func(t *testing.T) {
		d := newOrderTestDeps(t)

		otherBuyer := &entity.User{ID: 11, Role: entity.RoleBuyer}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10, Status: entity.OrderStatusPending}, nil).Once()

		_, err := d.service().GetOrder(ctx, otherBuyer, 1)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Missing order propagates not found", func(t *testing.T) {
		d := newOrderTestDeps(t)

		buyer := &entity.User{ID: 10, Role: entity.RoleBuyer}
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(5)).
			Return(nil, errs.ErrOrderNotFound).Once()

		_, err := d.service().GetOrder(ctx, buyer, 5)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})
}
