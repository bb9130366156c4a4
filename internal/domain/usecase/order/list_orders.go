package order

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
)

// ListOrders returns the orders visible to the acting user: buyers their own,
// sellers their assigned orders plus the unclaimed pending pool, the
// superuser everything.
func (s *Service) ListOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	switch actor.Role {
	case entity.RoleBuyer:
		return s.orderRepo.ListForBuyer(ctx, actor.ID)
	case entity.RoleSeller:
		return s.orderRepo.ListForSeller(ctx, actor.ID)
	case entity.RoleSuperuser:
		return s.orderRepo.ListAll(ctx)
	default:
		return nil, errs.ErrForbidden
	}
}

// GetOrder returns one order under the same visibility rule as ListOrders.
// An existing but invisible order is Forbidden, not NotFound, per contract.
func (s *Service) GetOrder(ctx context.Context, actor *entity.User, orderID uint64) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.VisibleTo(actor) {
		s.logger.Warn("Order access denied", map[string]any{
			"order_id": orderID,
			"user_id":  actor.ID,
			"role":     actor.Role.String(),
		})
		return nil, errs.ErrForbidden
	}

	return order, nil
}
