package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/example/marketplace/internal/domain/error"
	coremocks "github.com/example/marketplace/mocks/port/core"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Duplicate key detection", func(t *testing.T) {
		assert.True(t, classifier.IsDuplicateKeyError(
			errors.New(`duplicate key value violates unique constraint "idx_users_email"`)))
		assert.True(t, classifier.IsDuplicateKeyError(
			errors.New("ERROR: some unique violation (SQLSTATE 23505)")))
		assert.False(t, classifier.IsDuplicateKeyError(errors.New("connection refused")))
		assert.False(t, classifier.IsDuplicateKeyError(nil))
	})

	t.Run("Serialization detection", func(t *testing.T) {
		assert.True(t, classifier.IsSerializationError(
			errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")))
		assert.True(t, classifier.IsSerializationError(
			errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")))
		assert.False(t, classifier.IsSerializationError(errors.New("duplicate key")))
		assert.False(t, classifier.IsSerializationError(nil))
	})

	t.Run("Constraint detection includes duplicates", func(t *testing.T) {
		assert.True(t, classifier.IsConstraintError(
			errors.New(`insert violates foreign key constraint "fk_order_items_product"`)))
		assert.True(t, classifier.IsConstraintError(errors.New("duplicate key value")))
		assert.False(t, classifier.IsConstraintError(errors.New("broken pipe")))
	})
}

// The repositories must answer serialization failures with a conflict so the
// API maps them to 409 rather than 500.
func TestDatabaseErrorRouting(t *testing.T) {
	serialization := errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")

	newLogger := func(t *testing.T) *coremocks.MockLogger {
		l := coremocks.NewMockLogger(t)
		l.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
		l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
		return l
	}

	t.Run("User repository", func(t *testing.T) {
		repo := NewUserRepository(nil, coremocks.NewMockTimeProvider(t), newLogger(t))

		assert.ErrorIs(t, repo.handleDatabaseError("updating user", serialization, 7), errs.ErrConflict)
		assert.ErrorIs(t, repo.handleDatabaseError("creating user",
			errors.New(`duplicate key value violates unique constraint "idx_users_email"`), 0),
			errs.ErrDuplicateEmail)
	})

	t.Run("Order repository", func(t *testing.T) {
		repo := NewOrderRepository(nil, coremocks.NewMockTimeProvider(t), newLogger(t))

		assert.ErrorIs(t, repo.handleDatabaseError("claiming order", serialization, 1), errs.ErrConflict)
	})

	t.Run("Product repository", func(t *testing.T) {
		repo := NewProductRepository(nil, coremocks.NewMockTimeProvider(t), newLogger(t))

		assert.ErrorIs(t, repo.handleDatabaseError("decrementing stock", serialization, 1), errs.ErrConflict)
		assert.ErrorIs(t, repo.handleDatabaseError("creating product",
			errors.New("insert violates foreign key constraint"), 0),
			errs.ErrConstraintViolation)
	})
}
