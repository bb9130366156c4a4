package payment

import (
	"context"
	"fmt"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	paymentport "github.com/example/marketplace/internal/domain/port/payment"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// defaultCurrency is used when the request does not name one
const defaultCurrency = "USDT"

// CreatePayment creates a provider payment order for a buyer-owned order and
// stores the returned prepay id. Only the local bookkeeping is core; the
// provider call itself sits behind the ProviderClient port.
func (s *Service) CreatePayment(ctx context.Context, buyerID, orderID uint64, currency string) (*usecase.PaymentOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, errs.ErrOrderNotFound
	}
	if order.Status.IsTerminal() {
		return nil, errs.NewTransitionError(orderID, string(order.Status), string(entity.OrderStatusProcessing))
	}

	if currency == "" {
		currency = defaultCurrency
	}

	ref := tradeRef(orderID, s.timeProvider.Now().Unix())
	providerOrder, err := s.provider.CreateOrder(ctx, paymentport.ProviderOrderRequest{
		MerchantTradeNo: ref,
		AmountCents:     order.TotalCents,
		Currency:        currency,
		Description:     fmt.Sprintf("marketplace order %d", orderID),
	})
	if err != nil {
		s.logger.Error("Provider order creation failed", map[string]any{
			"order_id": orderID,
			"error":    err.Error(),
		})
		return nil, err
	}

	if err := s.orderRepo.SetPrepayID(ctx, orderID, providerOrder.PrepayID); err != nil {
		return nil, err
	}

	s.logger.Info("Payment order created", map[string]any{
		"order_id":  orderID,
		"trade_ref": ref,
		"prepay_id": providerOrder.PrepayID,
		"amount":    order.GetTotal(),
		"currency":  currency,
	})

	return &usecase.PaymentOrder{
		OrderID:     orderID,
		PrepayID:    providerOrder.PrepayID,
		CheckoutURL: providerOrder.CheckoutURL,
		Amount:      order.GetTotal(),
		Currency:    currency,
	}, nil
}

// GetPaymentStatus reports the order state alongside its latest transaction.
// Buyers see only their own orders; the superuser sees all.
func (s *Service) GetPaymentStatus(ctx context.Context, actor *entity.User, orderID uint64) (*usecase.PaymentStatus, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleSuperuser && order.BuyerID != actor.ID {
		return nil, errs.ErrForbidden
	}

	status := &usecase.PaymentStatus{
		OrderID:     orderID,
		OrderStatus: order.Status,
		Amount:      order.GetTotal(),
	}

	latest, err := s.txRepo.LatestByOrder(ctx, orderID)
	if err == nil {
		status.TransactionStatus = latest.Status
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	return status, nil
}
