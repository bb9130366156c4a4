package earnings

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// AdjustEarnings applies a manual correction to a seller's earnings. Unlike
// the historical direct-write path, every adjustment is itself ledgered with
// a nil order reference: `add` records the delta as given, `set` records the
// delta from the current value. The reconciliation invariant therefore holds
// on every path.
func (s *Service) AdjustEarnings(ctx context.Context, sellerID uint64, amount string, op usecase.EarningsOp) (*entity.User, error) {
	amountCents, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	seller, err := s.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller.Role != entity.RoleSeller {
		return nil, errs.ErrInvalidRole
	}

	var deltaCents int64
	switch op {
	case usecase.EarningsOpAdd:
		deltaCents = amountCents
	case usecase.EarningsOpSet:
		deltaCents = amountCents - seller.Earnings()
	default:
		return nil, errs.ErrInvalidStatus
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	newTotal, err := s.adjustInTx(txCtx, sellerID, deltaCents)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back earnings adjustment", map[string]any{"error": rbErr.Error()})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit earnings adjustment", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return nil, err
	}

	seller.SetEarnings(newTotal, s.timeProvider)
	s.logger.Info("Earnings adjusted", map[string]any{
		"seller_id": sellerID,
		"op":        string(op),
		"delta":     entity.CentsToString(deltaCents),
		"earnings":  seller.GetEarnings(),
	})
	return seller, nil
}

func (s *Service) adjustInTx(txCtx context.Context, sellerID uint64, deltaCents int64) (int64, error) {
	users := s.uow.GetUserRepository(txCtx)
	ledger := s.uow.GetEarningRepository(txCtx)

	if err := ledger.Append(txCtx, &entity.SellerEarning{
		SellerID:    sellerID,
		AmountCents: deltaCents,
		Note:        "manual adjustment",
		CreatedAt:   s.timeProvider.Now(),
	}); err != nil {
		return 0, err
	}

	newTotal, err := users.AddEarnings(txCtx, sellerID, deltaCents)
	if err != nil {
		return 0, err
	}
	if newTotal < 0 {
		return 0, errs.ErrNegativeEarnings
	}
	return newTotal, nil
}
