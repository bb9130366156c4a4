package catalog

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// ListProducts lists active products newest first, optionally by category
func (s *Service) ListProducts(ctx context.Context, categoryID uint64) ([]*entity.Product, error) {
	return s.productRepo.ListActive(ctx, categoryID)
}

// GetProduct retrieves an active product; soft-deleted products are invisible here
func (s *Service) GetProduct(ctx context.Context, id uint64) (*entity.Product, error) {
	return s.productRepo.GetActive(ctx, id)
}

// ListCategories lists the seeded reference categories
func (s *Service) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateProduct validates input and creates an active product
func (s *Service) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	priceCents, err := entity.ParsePositiveAmount(input.Price)
	if err != nil {
		return nil, errs.ErrInvalidPrice
	}

	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product, err := entity.NewProduct(input.Name, input.Description, priceCents, input.Stock, input.CategoryID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", map[string]any{
			"name":  product.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Product created", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.GetPrice(),
		"stock":      product.Stock,
	})
	return product, nil
}

// UpdateProduct validates input and updates catalog fields. Stock set here is
// a restock; order creation is the only path that decrements it.
func (s *Service) UpdateProduct(ctx context.Context, id uint64, input usecase.ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}

	priceCents, err := entity.ParsePositiveAmount(input.Price)
	if err != nil {
		return nil, errs.ErrInvalidPrice
	}

	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, errs.ErrInvalidProductName
	}
	if input.Stock < 0 {
		return nil, errs.ErrInvalidStock
	}

	product.Name = input.Name
	product.Description = input.Description
	product.PriceCents = priceCents
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
	product.UpdatedAt = s.timeProvider.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", map[string]any{
			"product_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Product updated", map[string]any{
		"product_id": id,
		"price":      product.GetPrice(),
		"stock":      product.Stock,
	})
	return product, nil
}

// DeleteProduct soft-deletes: the row stays referenceable by historical orders
func (s *Service) DeleteProduct(ctx context.Context, id uint64) error {
	if err := s.productRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deactivated", map[string]any{"product_id": id})
	return nil
}

func (s *Service) checkCategory(ctx context.Context, categoryID uint64) error {
	if categoryID == 0 {
		return errs.ErrInvalidCategory
	}
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrInvalidCategory
	}
	return nil
}
