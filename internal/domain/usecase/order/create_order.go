package order

import (
	"context"
	"errors"
	"strings"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// CreateOrder reserves stock and commits the order atomically. Each item's
// stock check-and-decrement is a single conditional UPDATE inside the same
// transaction as the order insert, so concurrent orders can never oversell
// and a partial failure rolls the whole order back.
func (s *Service) CreateOrder(
	ctx context.Context,
	buyerID uint64,
	items []usecase.OrderItemInput,
	contact usecase.ContactInput,
) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, errs.ErrEmptyOrder
	}
	if strings.TrimSpace(contact.Name) == "" || strings.TrimSpace(contact.Email) == "" {
		return nil, errs.ErrMissingContact
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, errs.ErrInvalidQuantity
		}
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin order transaction", map[string]any{"error": err.Error()})
		return nil, err
	}

	order, err := s.createInTx(txCtx, buyerID, items, contact)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back order creation", map[string]any{"error": rbErr.Error()})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit order creation", map[string]any{
			"buyer_id": buyerID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Order created", map[string]any{
		"order_id": order.ID,
		"buyer_id": buyerID,
		"items":    len(order.Items),
		"total":    order.GetTotal(),
	})
	return order, nil
}

func (s *Service) createInTx(
	txCtx context.Context,
	buyerID uint64,
	items []usecase.OrderItemInput,
	contact usecase.ContactInput,
) (*entity.Order, error) {
	products := s.uow.GetProductRepository(txCtx)
	orders := s.uow.GetOrderRepository(txCtx)

	var totalCents int64
	orderItems := make([]entity.OrderItem, 0, len(items))

	for _, item := range items {
		product, err := products.GetActive(txCtx, item.ProductID)
		if err != nil {
			if errors.Is(err, errs.ErrProductNotFound) {
				s.logger.Warn("Order references unavailable product", map[string]any{
					"buyer_id":   buyerID,
					"product_id": item.ProductID,
				})
				return nil, errs.ErrInvalidProduct
			}
			return nil, err
		}

		// The conditional decrement is the authoritative stock check; the
		// read above only supplies the price and a friendlier error.
		if product.Stock < item.Quantity {
			return nil, errs.NewInsufficientStockError(product.ID, item.Quantity, product.Stock)
		}
		if err := products.DecrementStock(txCtx, product.ID, item.Quantity); err != nil {
			return nil, err
		}

		totalCents += int64(item.Quantity) * product.PriceCents
		orderItems = append(orderItems, entity.OrderItem{
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: product.PriceCents,
		})
	}

	now := s.timeProvider.Now()
	order := &entity.Order{
		BuyerID:      buyerID,
		Status:       entity.OrderStatusPending,
		TotalCents:   totalCents,
		ContactName:  strings.TrimSpace(contact.Name),
		ContactEmail: strings.TrimSpace(contact.Email),
		ContactPhone: strings.TrimSpace(contact.Phone),
		Items:        orderItems,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := orders.Create(txCtx, order); err != nil {
		s.logger.Error("Failed to insert order", map[string]any{
			"buyer_id": buyerID,
			"error":    err.Error(),
		})
		return nil, err
	}

	return order, nil
}
