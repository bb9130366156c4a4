package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/infrastructure/adapter/model"
)

// CategoryRepository implements the CategoryRepository port using GORM
type CategoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, logger: logger}
}

// Exists reports whether the category id resolves
func (r *CategoryRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		r.logger.Error("Database error when checking category", map[string]any{
			"category_id": id,
			"error":       result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}
	return count > 0, nil
}

// List returns all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.Category
	result := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing categories", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, m := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		})
	}
	return categories, nil
}
