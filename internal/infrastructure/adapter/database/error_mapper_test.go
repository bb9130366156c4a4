package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/example/marketplace/internal/domain/error"
)

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("Nil passes through", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil, "commit"))
	})

	t.Run("Record not found maps to the not-found family", func(t *testing.T) {
		assert.ErrorIs(t, mapper.MapError(gorm.ErrRecordNotFound, "commit"), errs.ErrNotFound)
	})

	t.Run("Serialization and lock failures map to conflict", func(t *testing.T) {
		for _, msg := range []string{
			"ERROR: deadlock detected (SQLSTATE 40P01)",
			"ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)",
			"canceling statement due to lock timeout",
		} {
			assert.ErrorIs(t, mapper.MapError(errors.New(msg), "commit"), errs.ErrConflict, msg)
		}
	})

	t.Run("Email unique violation maps to duplicate email", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)
		assert.ErrorIs(t, mapper.MapError(err, "commit"), errs.ErrDuplicateEmail)
	})

	t.Run("Other unique violations are constraint violations", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_categories_name" (SQLSTATE 23505)`)
		assert.ErrorIs(t, mapper.MapError(err, "commit"), errs.ErrConstraintViolation)
	})

	t.Run("Foreign key violation is a constraint violation", func(t *testing.T) {
		err := errors.New(`ERROR: insert violates foreign key constraint "fk_order_items_product" (SQLSTATE 23503)`)
		assert.ErrorIs(t, mapper.MapError(err, "commit"), errs.ErrConstraintViolation)
	})

	t.Run("Connection failures are storage errors", func(t *testing.T) {
		assert.ErrorIs(t, mapper.MapError(errors.New("dial tcp: connection refused"), "commit"), errs.ErrStorage)
	})

	t.Run("Timeouts wrap storage with the operation", func(t *testing.T) {
		err := mapper.MapError(errors.New("context deadline exceeded"), "commit")
		assert.ErrorIs(t, err, errs.ErrStorage)
		assert.Contains(t, err.Error(), "commit")
	})

	t.Run("Anything else is internal", func(t *testing.T) {
		assert.ErrorIs(t, mapper.MapError(errors.New("splines unreticulated"), "commit"), errs.ErrInternalServer)
	})
}
