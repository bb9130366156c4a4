package usecase

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// ProductInput carries validated-at-the-edge product fields; Price is the
// decimal string from the wire, converted to cents inside the use case
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Stock       int
	CategoryID  uint64
}

// CatalogUseCase defines catalog read and superuser write operations
type CatalogUseCase interface {
	// ListProducts lists active products newest first, optionally by category
	ListProducts(ctx context.Context, categoryID uint64) ([]*entity.Product, error)

	// GetProduct retrieves an active product or ErrProductNotFound
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)

	// ListCategories lists the seeded reference categories
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateProduct validates and creates a product
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct validates and updates catalog fields of a product
	UpdateProduct(ctx context.Context, id uint64, input ProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes a product
	DeleteProduct(ctx context.Context, id uint64) error
}
