package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/infrastructure/adapter/model"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	role, err := entity.ParseRole(userModel.Role)
	if err != nil {
		r.logger.Error("Stored role is outside the closed set", map[string]any{
			"user_id": userModel.ID,
			"role":    userModel.Role,
		})
		return nil, fmt.Errorf("%w: unknown role %q for user %d", errs.ErrInternalServer, userModel.Role, userModel.ID)
	}

	user := &entity.User{
		ID:            userModel.ID,
		Email:         userModel.Email,
		PasswordHash:  userModel.PasswordHash,
		Role:          role,
		WalletAddress: userModel.WalletAddress,
		IsActive:      userModel.IsActive,
		CreatedAt:     userModel.CreatedAt,
		UpdatedAt:     userModel.UpdatedAt,
	}
	user.SetEarnings(userModel.Earnings, r.timeProvider)
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsSerializationError(err) {
		return errs.ErrConflict
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// Create inserts a new user; duplicate email surfaces as ErrDuplicateEmail
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		Role:          user.Role.String(),
		WalletAddress: user.WalletAddress,
		Earnings:      user.Earnings(),
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// GetByEmail retrieves a user by email, case-insensitive
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, 0)
	}

	return r.modelToEntity(&userModel)
}

// ListByRole lists users with the given role, newest first
func (r *UserRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("created_at DESC").
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, 0)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		user, err := r.modelToEntity(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Update persists mutable profile fields
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"password_hash":  user.PasswordHash,
			"wallet_address": user.WalletAddress,
			"is_active":      user.IsActive,
			"updated_at":     r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("User updated", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Deactivate soft-deletes the account
func (r *UserRepository) Deactivate(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("deactivating user", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("User deactivated", map[string]any{
		"user_id": id,
	})
	return nil
}

// AddEarnings atomically increments cumulative earnings in the database and
// returns the new value. The increment happens in SQL so concurrent sale
// assignments never lose updates.
func (r *UserRepository) AddEarnings(ctx context.Context, id uint64, deltaCents int64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"earnings":   gorm.Expr("earnings + ?", deltaCents),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("adding earnings", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return 0, errs.ErrUserNotFound
	}

	var userModel model.User
	if err := r.db.WithContext(ctx).Select("earnings").First(&userModel, id).Error; err != nil {
		return 0, r.handleDatabaseError("reading earnings", err, id)
	}

	r.logger.Info("Earnings updated", map[string]any{
		"user_id":  id,
		"delta":    entity.CentsToString(deltaCents),
		"earnings": entity.CentsToString(userModel.Earnings),
	})
	return userModel.Earnings, nil
}

// CountByRole aggregates user counts keyed by role
func (r *UserRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	type roleCount struct {
		Role  string
		Count int64
	}

	var rows []roleCount
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("counting users", result.Error, 0)
	}

	counts := make(map[entity.Role]int64, len(rows))
	for _, row := range rows {
		role, err := entity.ParseRole(row.Role)
		if err != nil {
			continue
		}
		counts[role] = row.Count
	}
	return counts, nil
}

// TopSellers returns the highest-earning sellers, at most limit rows
func (r *UserRepository) TopSellers(ctx context.Context, limit int) ([]entity.TopSeller, error) {
	type sellerRow struct {
		ID       uint64
		Email    string
		Earnings int64
	}

	var rows []sellerRow
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Select("id, email, earnings").
		Where("role = ?", entity.RoleSeller.String()).
		Order("earnings DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("ranking sellers", result.Error, 0)
	}

	sellers := make([]entity.TopSeller, 0, len(rows))
	for _, row := range rows {
		sellers = append(sellers, entity.TopSeller{
			SellerID:      row.ID,
			Email:         row.Email,
			EarningsCents: row.Earnings,
		})
	}
	return sellers, nil
}
