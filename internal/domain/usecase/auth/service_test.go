package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	authport "github.com/example/marketplace/internal/domain/port/auth"
	authmocks "github.com/example/marketplace/mocks/port/auth"
	coremocks "github.com/example/marketplace/mocks/port/core"
	persistencemocks "github.com/example/marketplace/mocks/port/persistence"
)

type authTestDeps struct {
	userRepo *persistencemocks.MockUserRepository
	tokens   *authmocks.MockTokenManager
	hasher   *authmocks.MockPasswordHasher
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newAuthTestDeps(t *testing.T) *authTestDeps {
	d := &authTestDeps{
		userRepo: persistencemocks.NewMockUserRepository(t),
		tokens:   authmocks.NewMockTokenManager(t),
		hasher:   authmocks.NewMockPasswordHasher(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	d.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return d
}

func (d *authTestDeps) service() *Service {
	return NewService(d.userRepo, d.tokens, d.hasher, d.time, d.logger)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Registers a buyer and issues a token", func(t *testing.T) {
		d := newAuthTestDeps(t)
		d.time.EXPECT().Now().Return(fixedTime)

		d.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()
		d.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" &&
				u.Role == entity.RoleBuyer &&
				u.PasswordHash == "hashed" &&
				u.WalletAddress == "0xwallet" &&
				u.IsActive
		})).Run(func(ctx context.Context, u *entity.User) {
			u.ID = 10
		}).Return(nil).Once()
		d.tokens.EXPECT().Issue(uint64(10), entity.RoleBuyer).Return("token123", nil).Once()

		result, err := d.service().Register(ctx, "Alice@Example.com", "secret123", "0xwallet")
		require.NoError(t, err)
		assert.Equal(t, "token123", result.Token)
		assert.Equal(t, uint64(10), result.User.ID)
		assert.Equal(t, entity.RoleBuyer, result.User.Role)
	})

	t.Run("Short password is rejected", func(t *testing.T) {
		d := newAuthTestDeps(t)

		_, err := d.service().Register(ctx, "alice@example.com", "123", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Malformed email is rejected", func(t *testing.T) {
		d := newAuthTestDeps(t)
		d.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()

		_, err := d.service().Register(ctx, "not-an-email", "secret123", "")
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("Duplicate email propagates", func(t *testing.T) {
		d := newAuthTestDeps(t)
		d.time.EXPECT().Now().Return(fixedTime)

		d.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
		d.userRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errs.ErrDuplicateEmail).Once()

		_, err := d.service().Register(ctx, "alice@example.com", "secret123", "")
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	activeUser := func() *entity.User {
		return &entity.User{ID: 10, Email: "alice@example.com", PasswordHash: "hashed",
			Role: entity.RoleBuyer, IsActive: true}
	}

	t.Run("Valid credentials issue a token", func(t *testing.T) {
		d := newAuthTestDeps(t)

		d.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(activeUser(), nil).Once()
		d.hasher.EXPECT().Compare("hashed", "secret123").Return(nil).Once()
		d.tokens.EXPECT().Issue(uint64(10), entity.RoleBuyer).Return("token123", nil).Once()

		result, err := d.service().Login(ctx, "alice@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "token123", result.Token)
	})

	t.Run("Unknown email collapses into invalid credentials", func(t *testing.T) {
		d := newAuthTestDeps(t)

		d.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()

		_, err := d.service().Login(ctx, "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password collapses into invalid credentials", func(t *testing.T) {
		d := newAuthTestDeps(t)

		d.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(activeUser(), nil).Once()
		d.hasher.EXPECT().Compare("hashed", "wrong").
			Return(errors.New("mismatch")).Once()

		_, err := d.service().Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Deactivated account collapses into invalid credentials", func(t *testing.T) {
		d := newAuthTestDeps(t)

		inactive := activeUser()
		inactive.IsActive = false
		d.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(inactive, nil).Once()

		_, err := d.service().Login(ctx, "alice@example.com", "secret123")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid token resolves the active user", func(t *testing.T) {
		d := newAuthTestDeps(t)

		d.tokens.EXPECT().Parse("token123").
			Return(&authport.Claims{UserID: 10, Role: entity.RoleBuyer}, nil).Once()
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(10)).
			Return(&entity.User{ID: 10, Role: entity.RoleBuyer, IsActive: true}, nil).Once()

		user, err := d.service().Authenticate(ctx, "token123")
		require.NoError(t, err)
		assert.Equal(t, uint64(10), user.ID)
	})

	t.Run("Empty token is unauthenticated", func(t *testing.T) {
		d := newAuthTestDeps(t)

		_, err := d.service().Authenticate(ctx, "")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Parse failure is unauthenticated", func(t *testing.T) {
		d := newAuthTestDeps(t)

		d.tokens.EXPECT().Parse("bad").Return(nil, errors.New("expired")).Once()

		_, err := d.service().Authenticate(ctx, "bad")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Deleted user is unauthenticated", func(t *testing.T) {
		d := newAuthTestDeps(t)

		d.tokens.EXPECT().Parse("token123").
			Return(&authport.Claims{UserID: 10, Role: entity.RoleBuyer}, nil).Once()
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(10)).
			Return(nil, errs.ErrUserNotFound).Once()

		_, err := d.service().Authenticate(ctx, "token123")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Deactivated user is unauthenticated", func(t *testing.T) {
		d := newAuthTestDeps(t)

		d.tokens.EXPECT().Parse("token123").
			Return(&authport.Claims{UserID: 10, Role: entity.RoleBuyer}, nil).Once()
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(10)).
			Return(&entity.User{ID: 10, Role: entity.RoleBuyer, IsActive: false}, nil).Once()

		_, err := d.service().Authenticate(ctx, "token123")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
