package model

import (
	"time"
)

// User represents the database model for marketplace accounts
type User struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Email         string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string    `gorm:"not null;size:255"`
	Role          string    `gorm:"not null;size:20;index"`
	WalletAddress string    `gorm:"size:255"`
	Earnings      int64     `gorm:"not null;default:0"` // Earnings in cents
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
