package entity

import (
	"time"
)

// OrderStatus is the order lifecycle state
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus validates a raw status string
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(raw), true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo implements the order state machine:
// pending -> processing -> completed, and pending|processing -> cancelled.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	default:
		return false
	}
}

// OrderItem captures one line of an order with the unit price frozen at
// order time, so historical totals are decoupled from later price changes.
type OrderItem struct {
	ID             uint64
	OrderID        uint64
	ProductID      uint64
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

// LineTotalCents returns quantity times the captured unit price
func (i OrderItem) LineTotalCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

// GetUnitPrice returns the captured unit price as a decimal string
func (i OrderItem) GetUnitPrice() string {
	return CentsToString(i.UnitPriceCents)
}

// Order is a buyer's purchase. SellerID stays nil until a seller claims the
// order; TotalCents is fixed at creation and must equal the sum of the line
// items forever after.
type Order struct {
	ID            uint64
	BuyerID       uint64
	SellerID      *uint64
	Status        OrderStatus
	TotalCents    int64
	ContactName   string
	ContactEmail  string
	ContactPhone  string
	PaymentProof  string
	ExternalTxID  string
	PrepayID      string
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GetTotal returns the order total as a decimal string
func (o *Order) GetTotal() string {
	return CentsToString(o.TotalCents)
}

// ItemsTotalCents sums the line totals; it must equal TotalCents
func (o *Order) ItemsTotalCents() int64 {
	var sum int64
	for _, item := range o.Items {
		sum += item.LineTotalCents()
	}
	return sum
}

// VisibleTo implements role-scoped visibility: buyers see their own orders,
// sellers see orders assigned to them plus the unclaimed pending pool, and
// the superuser sees everything.
func (o *Order) VisibleTo(user *User) bool {
	switch user.Role {
	case RoleSuperuser:
		return true
	case RoleBuyer:
		return o.BuyerID == user.ID
	case RoleSeller:
		if o.SellerID != nil && *o.SellerID == user.ID {
			return true
		}
		return o.Status == OrderStatusPending
	default:
		return false
	}
}
