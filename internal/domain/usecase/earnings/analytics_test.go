package earnings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
)

func TestAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates the full snapshot", func(t *testing.T) {
		d := newEarningsTestDeps(t)

		d.userRepo.EXPECT().CountByRole(mock.Anything).Return(map[entity.Role]int64{
			entity.RoleBuyer:     12,
			entity.RoleSeller:    3,
			entity.RoleSuperuser: 1,
		}, nil).Once()
		d.orderRepo.EXPECT().CountByStatus(mock.Anything).Return(map[entity.OrderStatus]int64{
			entity.OrderStatusPending:   4,
			entity.OrderStatusCompleted: 9,
		}, nil).Once()
		d.orderRepo.EXPECT().CompletedRevenue(mock.Anything).Return(int64(123450), nil).Once()
		d.productRepo.EXPECT().Totals(mock.Anything).Return(int64(20), int64(340), nil).Once()
		d.userRepo.EXPECT().TopSellers(mock.Anything, 5).Return([]entity.TopSeller{
			{SellerID: 7, Email: "top@example.com", EarningsCents: 99000},
		}, nil).Once()

		snapshot, err := d.service().Analytics(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(12), snapshot.UsersByRole[entity.RoleBuyer])
		assert.Equal(t, int64(9), snapshot.OrdersByStatus[entity.OrderStatusCompleted])
		assert.Equal(t, int64(123450), snapshot.CompletedRevenueCents)
		assert.Equal(t, int64(20), snapshot.ProductCount)
		assert.Equal(t, int64(340), snapshot.TotalStock)
		require.Len(t, snapshot.TopSellers, 1)
		assert.Equal(t, uint64(7), snapshot.TopSellers[0].SellerID)
	})

	t.Run("Any failing aggregate aborts the snapshot", func(t *testing.T) {
		d := newEarningsTestDeps(t)

		d.userRepo.EXPECT().CountByRole(mock.Anything).
			Return(nil, errs.ErrStorage).Once()

		_, err := d.service().Analytics(ctx)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
