package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/infrastructure/adapter/model"
)

// ProductRepository implements the ProductRepository port using GORM
type ProductRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// productRow carries a product joined with its category name
type productRow struct {
	model.Product
	CategoryName string
}

// rowToEntity converts a joined product row to a domain entity
func rowToEntity(row *productRow) *entity.Product {
	return &entity.Product{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		PriceCents:   row.Price,
		Stock:        row.Stock,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *ProductRepository) handleDatabaseError(operation string, err error, productID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Product not found", map[string]any{
			"product_id": productID,
		})
		return errs.ErrProductNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"product_id": productID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsSerializationError(err) {
		return errs.ErrConflict
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// Create inserts a new product
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.Product{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.PriceCents,
		Stock:       product.Stock,
		CategoryID:  product.CategoryID,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&productModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating product", result.Error, 0)
	}

	product.ID = productModel.ID

	r.logger.Info("Product created", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.GetPrice(),
		"stock":      product.Stock,
	})
	return nil
}

// Update persists catalog fields; stock is deliberately excluded because it
// only moves through DecrementStock.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.PriceCents,
			"category_id": product.CategoryID,
			"is_active":   product.IsActive,
			"updated_at":  r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating product", result.Error, product.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProductNotFound
	}

	r.logger.Info("Product updated", map[string]any{
		"product_id": product.ID,
	})
	return nil
}

// SoftDelete clears is_active so historical order items keep resolving
func (r *ProductRepository) SoftDelete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND is_active", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("deleting product", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProductNotFound
	}

	r.logger.Info("Product deactivated", map[string]any{
		"product_id": id,
	})
	return nil
}

// GetActive retrieves an active product with its category name joined
func (r *ProductRepository) GetActive(ctx context.Context, id uint64) (*entity.Product, error) {
	var row productRow
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.id = ? AND products.is_active", id).
		First(&row)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting product", result.Error, id)
	}

	return rowToEntity(&row), nil
}

// ListActive lists active products newest first, optionally filtered by category
func (r *ProductRepository) ListActive(ctx context.Context, categoryID uint64) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active")
	if categoryID != 0 {
		query = query.Where("products.category_id = ?", categoryID)
	}

	var rows []productRow
	result := query.Order("products.created_at DESC").Find(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing products", result.Error, 0)
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, rowToEntity(&rows[i]))
	}
	return products, nil
}

// DecrementStock performs the conditional decrement that closes the oversell
// race. The WHERE clause is the authority: zero rows affected means the
// product is missing, inactive, or short on stock.
func (r *ProductRepository) DecrementStock(ctx context.Context, id uint64, quantity int) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND is_active AND stock >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", quantity),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("decrementing stock", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Stock decrement rejected", map[string]any{
			"product_id": id,
			"quantity":   quantity,
		})
		return errs.ErrInsufficientStock
	}

	r.logger.Debug("Stock decremented", map[string]any{
		"product_id": id,
		"quantity":   quantity,
	})
	return nil
}

// Totals returns the active product count and the stock sum
func (r *ProductRepository) Totals(ctx context.Context) (int64, int64, error) {
	type totalsRow struct {
		Count int64
		Stock int64
	}

	var row totalsRow
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("COUNT(*) AS count, COALESCE(SUM(stock), 0) AS stock").
		Where("is_active").
		Scan(&row)
	if result.Error != nil {
		return 0, 0, r.handleDatabaseError("aggregating products", result.Error, 0)
	}

	return row.Count, row.Stock, nil
}
