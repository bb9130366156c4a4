package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/example/marketplace/internal/domain/error"
	coremocks "github.com/example/marketplace/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates an active user with normalized email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		user, err := NewUser("  Alice@Example.COM ", "hash", RoleBuyer, mockTime)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleBuyer, user.Role)
		assert.True(t, user.IsActive)
		assert.Equal(t, int64(0), user.Earnings())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Rejects malformed email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewUser("", "hash", RoleBuyer, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)

		_, err = NewUser("not-an-email", "hash", RoleBuyer, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("Rejects empty password hash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewUser("alice@example.com", "", RoleBuyer, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestUserEarnings(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Accrue adds to the cumulative total", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		user := &User{Role: RoleSeller}
		require.NoError(t, user.AccrueEarnings(2500, mockTime))
		assert.Equal(t, int64(2500), user.Earnings())
		assert.Equal(t, "25.00", user.GetEarnings())
	})

	t.Run("Accrue rejects going negative", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user := &User{Role: RoleSeller}
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		require.NoError(t, user.AccrueEarnings(1000, mockTime))

		err := user.AccrueEarnings(-1500, mockTime)
		assert.ErrorIs(t, err, errs.ErrNegativeEarnings)
		assert.Equal(t, int64(1000), user.Earnings())
	})

	t.Run("SetEarnings replaces the value", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		user := &User{Role: RoleSeller}
		user.SetEarnings(4200, mockTime)
		assert.Equal(t, "42.00", user.GetEarnings())
	})
}

func TestParseRole(t *testing.T) {
	t.Run("Known roles", func(t *testing.T) {
		for _, raw := range []string{"buyer", "seller", "superuser"} {
			role, err := ParseRole(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, role.String())
		}
	})

	t.Run("Unknown role", func(t *testing.T) {
		_, err := ParseRole("admin")
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleSeller.In(RoleSeller, RoleSuperuser))
	assert.True(t, RoleSuperuser.In(RoleSeller, RoleSuperuser))
	assert.False(t, RoleBuyer.In(RoleSeller, RoleSuperuser))
	assert.False(t, RoleBuyer.In())
}
