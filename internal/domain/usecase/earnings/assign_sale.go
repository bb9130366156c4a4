package earnings

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
)

// AssignSale credits a seller for an order: one ledger row appended and the
// cumulative earnings incremented, committed together or not at all.
func (s *Service) AssignSale(ctx context.Context, sellerID, orderID uint64, amount string) (*entity.SellerEarning, error) {
	amountCents, err := entity.ParsePositiveAmount(amount)
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

	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	earning, err := s.assignInTx(txCtx, sellerID, orderID, amountCents)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back sale assignment", map[string]any{"error": rbErr.Error()})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit sale assignment", map[string]any{
			"seller_id": sellerID,
			"order_id":  orderID,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Sale assigned", map[string]any{
		"seller_id": sellerID,
		"order_id":  orderID,
		"amount":    earning.GetAmount(),
	})
	return earning, nil
}

func (s *Service) assignInTx(txCtx context.Context, sellerID, orderID uint64, amountCents int64) (*entity.SellerEarning, error) {
	users := s.uow.GetUserRepository(txCtx)
	ledger := s.uow.GetEarningRepository(txCtx)

	oid := orderID
	earning := &entity.SellerEarning{
		SellerID:    sellerID,
		OrderID:     &oid,
		AmountCents: amountCents,
		CreatedAt:   s.timeProvider.Now(),
	}

	if err := ledger.Append(txCtx, earning); err != nil {
		return nil, err
	}
	if _, err := users.AddEarnings(txCtx, sellerID, amountCents); err != nil {
		return nil, err
	}

	return earning, nil
}
