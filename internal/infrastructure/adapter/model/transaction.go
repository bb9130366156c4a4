package model

import (
	"time"
)

// Transaction represents the database model for payment transactions
type Transaction struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID      uint64    `gorm:"not null;index"`
	UserID       uint64    `gorm:"not null;index"`
	Amount       int64     `gorm:"not null"` // Amount in cents
	ExternalTxID string    `gorm:"size:255;index"`
	Proof        string    `gorm:"type:text"`
	Status       string    `gorm:"not null;size:20;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	// Define relationships
	Order Order `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
