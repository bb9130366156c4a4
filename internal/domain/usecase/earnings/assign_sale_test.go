package earnings

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
	coremocks "github.com/example/marketplace/mocks/port/core"
	persistencemocks "github.com/example/marketplace/mocks/port/persistence"
)

type earningsTestDeps struct {
	uow         *persistencemocks.MockUnitOfWork
	userRepo    *persistencemocks.MockUserRepository
	orderRepo   *persistencemocks.MockOrderRepository
	productRepo *persistencemocks.MockProductRepository
	txUsers     *persistencemocks.MockUserRepository
	ledger      *persistencemocks.MockEarningRepository
	hasher      *fakeHasher
	time        *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

// fakeHasher is deterministic and keeps seller tests independent of bcrypt
type fakeHasher struct{}

func (f *fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (f *fakeHasher) Compare(hash, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("mismatch")
}

func newEarningsTestDeps(t *testing.T) *earningsTestDeps {
	d := &earningsTestDeps{
		uow:         persistencemocks.NewMockUnitOfWork(t),
		userRepo:    persistencemocks.NewMockUserRepository(t),
		orderRepo:   persistencemocks.NewMockOrderRepository(t),
		productRepo: persistencemocks.NewMockProductRepository(t),
		txUsers:     persistencemocks.NewMockUserRepository(t),
		ledger:      persistencemocks.NewMockEarningRepository(t),
		hasher:      &fakeHasher{},
		time:        coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}

	d.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	d.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return d
}

func (d *earningsTestDeps) service() *Service {
	return NewService(d.uow, d.userRepo, d.orderRepo, d.productRepo, d.hasher, d.time, d.logger)
}

func (d *earningsTestDeps) expectTx() {
	d.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil).Once()
	d.uow.EXPECT().GetUserRepository(mock.Anything).Return(d.txUsers).Maybe()
	d.uow.EXPECT().GetEarningRepository(mock.Anything).Return(d.ledger).Maybe()
}

func TestAssignSale(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seller := &entity.User{ID: 7, Role: entity.RoleSeller, IsActive: true}

	t.Run("Ledger row and accrual commit together", func(t *testing.T) {
		d := newEarningsTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		d.time.EXPECT().Now().Return(fixedTime)

		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(seller, nil).Once()
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1, BuyerID: 10}, nil).Once()

		d.ledger.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *entity.SellerEarning) bool {
			return e.SellerID == 7 &&
				e.OrderID != nil && *e.OrderID == 1 &&
				e.AmountCents == 2550
		})).Return(nil).Once()
		d.txUsers.EXPECT().AddEarnings(mock.Anything, uint64(7), int64(2550)).
			Return(int64(2550), nil).Once()

		earning, err := d.service().AssignSale(ctx, 7, 1, "25.50")
		require.NoError(t, err)
		assert.Equal(t, "25.50", earning.GetAmount())
	})

	t.Run("Invalid amount is rejected before any lookup", func(t *testing.T) {
		d := newEarningsTestDeps(t)

		_, err := d.service().AssignSale(ctx, 7, 1, "not-money")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = d.service().AssignSale(ctx, 7, 1, "0")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = d.service().AssignSale(ctx, 7, 1, "-5.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Target must hold the seller role", func(t *testing.T) {
		d := newEarningsTestDeps(t)

		buyer := &entity.User{ID: 10, Role: entity.RoleBuyer, IsActive: true}
		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(10)).Return(buyer, nil).Once()

		_, err := d.service().AssignSale(ctx, 10, 1, "25.50")
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})

	t.Run("Unknown order is rejected", func(t *testing.T) {
		d := newEarningsTestDeps(t)

		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(seller, nil).Once()
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(9)).
			Return(nil, errs.ErrOrderNotFound).Once()

		_, err := d.service().AssignSale(ctx, 7, 9, "25.50")
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("Accrual failure rolls the ledger row back", func(t *testing.T) {
		d := newEarningsTestDeps(t)
		d.expectTx()
		d.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		d.time.EXPECT().Now().Return(fixedTime)

		d.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(seller, nil).Once()
		d.orderRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.Order{ID: 1}, nil).Once()

		d.ledger.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
		dbErr := errors.New("update failed")
		d.txUsers.EXPECT().AddEarnings(mock.Anything, uint64(7), int64(2550)).
			Return(int64(0), dbErr).Once()

		_, err := d.service().AssignSale(ctx, 7, 1, "25.50")
		assert.ErrorIs(t, err, dbErr)
	})
}
