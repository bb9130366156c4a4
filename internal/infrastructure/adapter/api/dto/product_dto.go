package dto

import (
	"github.com/example/marketplace/internal/domain/entity"
)

// ProductRequest is the payload for creating or updating a product
type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Stock       int    `json:"stock"`
	CategoryID  uint64 `json:"categoryId" binding:"required"`
}

// ProductResponse is the public view of a catalog product
type ProductResponse struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Price        string `json:"price"`
	Stock        int    `json:"stock"`
	CategoryID   uint64 `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// CategoryResponse is the public view of a category
type CategoryResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewProductResponse maps a product entity to its public view
func NewProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.GetPrice(),
		Stock:        product.Stock,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
		CreatedAt:    product.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// NewProductListResponse maps a slice of products
func NewProductListResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// NewCategoryListResponse maps a slice of categories
func NewCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return out
}
