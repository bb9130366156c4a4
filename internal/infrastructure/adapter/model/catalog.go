package model

import (
	"time"
)

// Category represents the database model for product categories
type Category struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"uniqueIndex;not null;size:100"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Product represents the database model for catalog products
type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"not null;size:255"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"` // Price in cents
	Stock       int       `gorm:"not null;default:0"`
	CategoryID  uint64    `gorm:"not null;index"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Define relationships
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
