package model

import (
	"time"
)

// SellerEarning represents the database model for the append-only earnings
// ledger. OrderID is NULL for manual adjustments.
type SellerEarning struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	SellerID  uint64    `gorm:"not null;index"`
	OrderID   *uint64   `gorm:"index"`
	Amount    int64     `gorm:"not null"` // Amount in cents
	Note      string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null"`

	// Define relationships
	Seller User `gorm:"foreignKey:SellerID;references:ID"`
}

// TableName specifies the table name for SellerEarning
func (SellerEarning) TableName() string {
	return "seller_earnings"
}
