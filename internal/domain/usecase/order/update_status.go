package order

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
)

// UpdateStatus drives the order state machine. A pending order moving to
// processing with no seller assigned is a claim: the assignment and the
// status change are one conditional UPDATE, so two sellers racing for the
// same order get exactly one winner and one ErrOrderAlreadyClaimed.
func (s *Service) UpdateStatus(
	ctx context.Context,
	actor *entity.User,
	orderID uint64,
	target entity.OrderStatus,
	explicitSellerID uint64,
) (*entity.Order, error) {
	if _, ok := entity.ParseOrderStatus(string(target)); !ok {
		return nil, errs.ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, errs.NewTransitionError(orderID, string(order.Status), string(target))
	}

	// Sellers may only act on their own orders once one is assigned.
	if actor.Role == entity.RoleSeller && order.SellerID != nil && *order.SellerID != actor.ID {
		return nil, errs.ErrForbidden
	}

	claiming := target == entity.OrderStatusProcessing && order.SellerID == nil
	if claiming {
		sellerID := actor.ID
		// Only the superuser may assign a seller other than themselves.
		if explicitSellerID != 0 {
			if actor.Role != entity.RoleSuperuser {
				return nil, errs.ErrForbidden
			}
			sellerID = explicitSellerID
		}

		if err := s.orderRepo.Claim(ctx, orderID, sellerID); err != nil {
			s.logger.Warn("Order claim failed", map[string]any{
				"order_id":  orderID,
				"seller_id": sellerID,
				"error":     err.Error(),
			})
			return nil, err
		}

		s.logger.Info("Order claimed", map[string]any{
			"order_id":  orderID,
			"seller_id": sellerID,
		})
	} else {
		// Plain transition, conditioned on the status we just read so a
		// concurrent transition surfaces as a conflict instead of clobbering.
		if err := s.orderRepo.UpdateStatus(ctx, orderID, order.Status, target); err != nil {
			return nil, err
		}

		s.logger.Info("Order status updated", map[string]any{
			"order_id": orderID,
			"from":     string(order.Status),
			"to":       string(target),
			"actor_id": actor.ID,
		})
	}

	return s.orderRepo.GetByID(ctx, orderID)
}
