package model

import (
	"time"
)

// Order represents the database model for orders. SellerID stays NULL until a
// seller claims the order; the claim and status updates are conditional so the
// database serializes concurrent writers.
type Order struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	BuyerID      uint64    `gorm:"not null;index"`
	SellerID     *uint64   `gorm:"index"`
	Status       string    `gorm:"not null;size:20;index"`
	TotalAmount  int64     `gorm:"not null"` // Total in cents
	ContactName  string    `gorm:"not null;size:255"`
	ContactEmail string    `gorm:"not null;size:255"`
	ContactPhone string    `gorm:"size:50"`
	PaymentProof string    `gorm:"type:text"`
	ExternalTxID string    `gorm:"size:255"`
	PrepayID     string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	// Define relationships
	Buyer User        `gorm:"foreignKey:BuyerID;references:ID"`
	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents the database model for order line items. ProductName
// and UnitPrice are captured at order time so later catalog edits never change
// historical orders.
type OrderItem struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID     uint64 `gorm:"not null;index"`
	ProductID   uint64 `gorm:"not null;index"`
	ProductName string `gorm:"not null;size:255"`
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"` // Unit price in cents

	// Define relationships
	Product Product `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}
