package migration

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/marketplace/internal/domain/entity"
	authport "github.com/example/marketplace/internal/domain/port/auth"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/infrastructure/adapter/model"
)

// defaultCategories is the reference data seeded into an empty catalog
var defaultCategories = []model.Category{
	{Name: "Software", Description: "Licenses and activation keys"},
	{Name: "Gift Cards", Description: "Prepaid store and platform credit"},
	{Name: "Game Items", Description: "In-game currency and items"},
	{Name: "Subscriptions", Description: "Streaming and service subscriptions"},
	{Name: "E-Books", Description: "Digital books and guides"},
}

// Seeder populates reference data and the initial superuser account
type Seeder struct {
	db           *gorm.DB
	hasher       authport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(db *gorm.DB, hasher authport.PasswordHasher, timeProvider coreport.TimeProvider, logger coreport.Logger) *Seeder {
	return &Seeder{
		db:           db,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SeedAll seeds categories and the superuser; both steps are idempotent
func (s *Seeder) SeedAll(ctx context.Context, superuserEmail, superuserPassword string) error {
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	return s.seedSuperuser(ctx, superuserEmail, superuserPassword)
}

// seedCategories inserts the default categories when the table is empty
func (s *Seeder) seedCategories(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := s.timeProvider.Now()
	categories := make([]model.Category, len(defaultCategories))
	copy(categories, defaultCategories)
	for i := range categories {
		categories[i].CreatedAt = now
	}

	if err := s.db.WithContext(ctx).Create(&categories).Error; err != nil {
		return err
	}

	s.logger.Info("Default categories seeded", map[string]any{
		"count": len(categories),
	})
	return nil
}

// seedSuperuser creates the superuser account when it does not exist yet
func (s *Seeder) seedSuperuser(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.Warn("Superuser credentials not configured, skipping seed", nil)
		return nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", entity.RoleSuperuser.String()).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	superuser := model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleSuperuser.String(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.db.WithContext(ctx).Create(&superuser).Error; err != nil {
		return err
	}

	s.logger.Info("Superuser account seeded", map[string]any{
		"user_id": superuser.ID,
	})
	return nil
}
