package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/infrastructure/adapter/model"
)

// EarningRepository implements the EarningRepository port using GORM. The
// ledger is append-only; there is no update or delete path.
type EarningRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewEarningRepository creates a new EarningRepository instance
func NewEarningRepository(db *gorm.DB, logger coreport.Logger) *EarningRepository {
	return &EarningRepository{db: db, logger: logger}
}

// Append adds one ledger row
func (r *EarningRepository) Append(ctx context.Context, earning *entity.SellerEarning) error {
	earningModel := model.SellerEarning{
		SellerID:  earning.SellerID,
		OrderID:   earning.OrderID,
		Amount:    earning.AmountCents,
		Note:      earning.Note,
		CreatedAt: earning.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&earningModel)
	if result.Error != nil {
		r.logger.Error("Database error when appending earning", map[string]any{
			"seller_id": earning.SellerID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	earning.ID = earningModel.ID

	r.logger.Info("Earning ledgered", map[string]any{
		"earning_id": earning.ID,
		"seller_id":  earning.SellerID,
		"amount":     earning.GetAmount(),
	})
	return nil
}

// SumBySeller returns the ledgered total for a seller in cents
func (r *EarningRepository) SumBySeller(ctx context.Context, sellerID uint64) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&model.SellerEarning{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("seller_id = ?", sellerID).
		Scan(&total)
	if result.Error != nil {
		r.logger.Error("Database error when summing earnings", map[string]any{
			"seller_id": sellerID,
			"error":     result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}
	return total, nil
}
