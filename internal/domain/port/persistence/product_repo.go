package persistence

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// ProductRepository defines persistence operations for the catalog
type ProductRepository interface {
	// Create inserts a new product
	Create(ctx context.Context, product *entity.Product) error

	// Update persists catalog fields; it never touches stock
	Update(ctx context.Context, product *entity.Product) error

	// SoftDelete clears is_active; historical order items keep resolving the row
	SoftDelete(ctx context.Context, id uint64) error

	// GetActive retrieves an active product with its category name joined
	GetActive(ctx context.Context, id uint64) (*entity.Product, error)

	// ListActive lists active products newest first, optionally filtered by category
	ListActive(ctx context.Context, categoryID uint64) ([]*entity.Product, error)

	// DecrementStock performs the atomic conditional decrement that closes the
	// oversell race: zero rows affected means the product is missing, inactive,
	// or short on stock, and the caller must reject the order.
	DecrementStock(ctx context.Context, id uint64, quantity int) error

	// Totals returns the active product count and the stock sum
	Totals(ctx context.Context) (count int64, stock int64, err error)
}

// CategoryRepository defines persistence operations for reference categories
type CategoryRepository interface {
	// Exists reports whether the category id resolves
	Exists(ctx context.Context, id uint64) (bool, error)

	// List returns all categories ordered by name
	List(ctx context.Context) ([]*entity.Category, error)
}
