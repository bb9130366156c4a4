package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/infrastructure/adapter/database"
	"github.com/example/marketplace/internal/infrastructure/adapter/logger"
	"github.com/example/marketplace/internal/infrastructure/adapter/model"
	"github.com/example/marketplace/internal/infrastructure/adapter/repository"
	timeprovider "github.com/example/marketplace/internal/infrastructure/adapter/time"
)

// These tests need a running Postgres (TEST_DB_* env vars) and verify the
// conditional updates under real concurrency, which mocks cannot.
func setupIntegration(t *testing.T) *database.TestDBManager {
	t.Helper()

	if os.Getenv("MKT_INTEGRATION_TEST") == "" {
		t.Skip("set MKT_INTEGRATION_TEST=1 to run database integration tests")
	}

	mgr := database.NewTestDBManager(t, logger.NewNoopLogger())
	require.NoError(t, mgr.Connect(t))
	t.Cleanup(func() { mgr.Close(t) })

	mgr.SetupTestDB(t)
	return mgr
}

func seedCategory(t *testing.T, mgr *database.TestDBManager) uint64 {
	t.Helper()

	category := model.Category{Name: "integration", CreatedAt: time.Now()}
	require.NoError(t, mgr.Manager.DB().Create(&category).Error)
	return category.ID
}

func seedUser(t *testing.T, mgr *database.TestDBManager, email string, role entity.Role) uint64 {
	t.Helper()

	now := time.Now()
	user := model.User{
		Email:        email,
		PasswordHash: "x",
		Role:         string(role),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, mgr.Manager.DB().Create(&user).Error)
	return user.ID
}

func TestDecrementStockUnderContention(t *testing.T) {
	mgr := setupIntegration(t)
	ctx := context.Background()

	categoryID := seedCategory(t, mgr)
	productID := mgr.CreateTestProduct(t, categoryID, 1000, 10)

	repo := repository.NewProductRepository(mgr.Manager.DB(), timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

	// 25 workers each try to take 1 unit from a stock of 10; exactly 10
	// must succeed and the rest must see the stock rejection.
	const workers = 25
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.DecrementStock(ctx, productID, 1)
		}()
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, errs.ErrInsufficientStock):
			rejected++
		}
	}

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 15, rejected)

	product, err := repo.GetActive(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestClaimHasExactlyOneWinner(t *testing.T) {
	mgr := setupIntegration(t)
	ctx := context.Background()

	buyerID := seedUser(t, mgr, "buyer@integration.local", entity.RoleBuyer)

	now := time.Now()
	order := model.Order{
		BuyerID:      buyerID,
		Status:       string(entity.OrderStatusPending),
		TotalAmount:  1000,
		ContactName:  "Buyer",
		ContactEmail: "buyer@integration.local",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, mgr.Manager.DB().Create(&order).Error)

	const sellers = 8
	sellerIDs := make([]uint64, sellers)
	for i := range sellerIDs {
		sellerIDs[i] = seedUser(t, mgr, "seller"+string(rune('a'+i))+"@integration.local", entity.RoleSeller)
	}

	repo := repository.NewOrderRepository(mgr.Manager.DB(), timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

	var wg sync.WaitGroup
	wins := make(chan uint64, sellers)
	for _, sellerID := range sellerIDs {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			if err := repo.Claim(ctx, order.ID, id); err == nil {
				wins <- id
			}
		}(sellerID)
	}
	wg.Wait()
	close(wins)

	winners := make([]uint64, 0, sellers)
	for id := range wins {
		winners = append(winners, id)
	}
	require.Len(t, winners, 1)

	claimed, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.SellerID)
	assert.Equal(t, winners[0], *claimed.SellerID)
	assert.Equal(t, entity.OrderStatusProcessing, claimed.Status)
}

func TestAddEarningsReturnsTheNewTotal(t *testing.T) {
	mgr := setupIntegration(t)
	ctx := context.Background()

	sellerID := seedUser(t, mgr, "seller@integration.local", entity.RoleSeller)
	repo := repository.NewUserRepository(mgr.Manager.DB(), timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddEarnings(ctx, sellerID, 250)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seller, err := repo.GetByID(ctx, sellerID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*250), seller.Earnings())
}
