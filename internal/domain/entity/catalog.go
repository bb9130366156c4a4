package entity

import (
	"strings"
	"time"

	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
)

// Category is static reference data, seeded once at startup
type Category struct {
	ID          uint64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Product is a catalog entry. Price is cents, stock a non-negative count.
// Deleting a product only clears IsActive so historical order items keep
// resolving; stock is decremented exclusively by order creation.
type Product struct {
	ID           uint64
	Name         string
	Description  string
	PriceCents   int64
	Stock        int
	CategoryID   uint64
	CategoryName string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProduct validates and builds an active product
func NewProduct(name, description string, priceCents int64, stock int, categoryID uint64, timeProvider coreport.TimeProvider) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidProductName
	}
	if priceCents <= 0 {
		return nil, errs.ErrInvalidPrice
	}
	if stock < 0 {
		return nil, errs.ErrInvalidStock
	}
	if categoryID == 0 {
		return nil, errs.ErrInvalidCategory
	}

	now := timeProvider.Now()
	return &Product{
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		Stock:       stock,
		CategoryID:  categoryID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetPrice returns the price as a two-decimal string
func (p *Product) GetPrice() string {
	return CentsToString(p.PriceCents)
}
