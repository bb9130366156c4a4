package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	t.Run("Known statuses", func(t *testing.T) {
		for _, raw := range []string{"pending", "processing", "completed", "cancelled"} {
			status, ok := ParseOrderStatus(raw)
			assert.True(t, ok)
			assert.Equal(t, OrderStatus(raw), status)
		}
	})

	t.Run("Unknown status", func(t *testing.T) {
		_, ok := ParseOrderStatus("shipped")
		assert.False(t, ok)

		_, ok = ParseOrderStatus("")
		assert.False(t, ok)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusProcessing, OrderStatusCompleted, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusProcessing, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusProcessing.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestOrderItemTotals(t *testing.T) {
	item := OrderItem{Quantity: 3, UnitPriceCents: 1050}
	assert.Equal(t, int64(3150), item.LineTotalCents())
	assert.Equal(t, "10.50", item.GetUnitPrice())

	order := &Order{
		TotalCents: 4150,
		Items: []OrderItem{
			item,
			{Quantity: 1, UnitPriceCents: 1000},
		},
	}
	assert.Equal(t, int64(4150), order.ItemsTotalCents())
	assert.Equal(t, order.TotalCents, order.ItemsTotalCents())
	assert.Equal(t, "41.50", order.GetTotal())
}

func TestOrderVisibleTo(t *testing.T) {
	sellerID := uint64(7)
	buyer := &User{ID: 1, Role: RoleBuyer}
	otherBuyer := &User{ID: 2, Role: RoleBuyer}
	seller := &User{ID: sellerID, Role: RoleSeller}
	otherSeller := &User{ID: 8, Role: RoleSeller}
	superuser := &User{ID: 99, Role: RoleSuperuser}

	t.Run("Buyer sees only their own orders", func(t *testing.T) {
		order := &Order{BuyerID: 1, Status: OrderStatusPending}
		assert.True(t, order.VisibleTo(buyer))
		assert.False(t, order.VisibleTo(otherBuyer))
	})

	t.Run("Seller sees the unclaimed pending pool", func(t *testing.T) {
		unclaimed := &Order{BuyerID: 1, Status: OrderStatusPending}
		assert.True(t, unclaimed.VisibleTo(seller))
		assert.True(t, unclaimed.VisibleTo(otherSeller))
	})

	t.Run("Seller sees their assigned orders only", func(t *testing.T) {
		claimed := &Order{BuyerID: 1, SellerID: &sellerID, Status: OrderStatusProcessing}
		assert.True(t, claimed.VisibleTo(seller))
		assert.False(t, claimed.VisibleTo(otherSeller))
		assert.False(t, claimed.VisibleTo(otherBuyer))
	})

	t.Run("Superuser sees everything", func(t *testing.T) {
		order := &Order{BuyerID: 1, SellerID: &sellerID, Status: OrderStatusCompleted}
		assert.True(t, order.VisibleTo(superuser))
	})
}
