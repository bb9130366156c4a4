package persistence

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// UserRepository defines persistence operations for user accounts
type UserRepository interface {
	// Create inserts a new user; duplicate email surfaces as ErrDuplicateEmail
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email, case-insensitive
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListByRole lists users with the given role, newest first
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Update persists mutable profile fields (wallet, password hash, active flag)
	Update(ctx context.Context, user *entity.User) error

	// Deactivate soft-deletes the account; the row is never removed
	Deactivate(ctx context.Context, id uint64) error

	// AddEarnings atomically increments cumulative earnings and returns the
	// resulting value in cents
	AddEarnings(ctx context.Context, id uint64, deltaCents int64) (int64, error)

	// CountByRole aggregates user counts keyed by role
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)

	// TopSellers returns the highest-earning sellers, at most limit rows
	TopSellers(ctx context.Context, limit int) ([]entity.TopSeller, error)
}
