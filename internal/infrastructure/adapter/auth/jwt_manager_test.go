package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	coremocks "github.com/example/marketplace/mocks/port/core"
)

func TestJWTManager(t *testing.T) {
	t.Run("Round trip preserves the claims", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()

		manager := NewJWTManager("signing-secret", mockTime)

		token, err := manager.Issue(42, entity.RoleSeller)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
		assert.Equal(t, entity.RoleSeller, claims.Role)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now().Add(-TokenTTL - time.Hour)).Once()

		manager := NewJWTManager("signing-secret", mockTime)

		token, err := manager.Issue(42, entity.RoleSeller)
		require.NoError(t, err)

		_, err = manager.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()

		issuer := NewJWTManager("secret-a", mockTime)
		verifier := NewJWTManager("secret-b", mockTime)

		token, err := issuer.Issue(42, entity.RoleBuyer)
		require.NoError(t, err)

		_, err = verifier.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Unknown role inside a valid token is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()

		manager := NewJWTManager("signing-secret", mockTime)

		token, err := manager.Issue(42, entity.Role("admin"))
		require.NoError(t, err)

		_, err = manager.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		manager := NewJWTManager("signing-secret", mockTime)

		_, err := manager.Parse("not.a.jwt")
		assert.Error(t, err)
	})
}
