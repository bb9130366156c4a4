package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// Provider business statuses delivered through the webhook
const (
	bizStatusPaySuccess = "PAY_SUCCESS"
	bizStatusPayClosed  = "PAY_CLOSED"
)

// webhookPayload is the provider's notification envelope
type webhookPayload struct {
	BizType   string          `json:"bizType"`
	BizStatus string          `json:"bizStatus"`
	Data      json.RawMessage `json:"data"`
}

// webhookData is the payment detail inside the envelope
type webhookData struct {
	MerchantTradeNo string `json:"merchantTradeNo"`
	TransactionID   string `json:"transactionId"`
}

// HandleWebhook verifies the provider signature before trusting anything in
// the payload; an absent or bad signature is rejected, never skipped. On
// PAY_SUCCESS the referenced order moves to processing and its latest
// transaction is marked verified in one unit of work. Redeliveries are
// idempotent: an already-verified transaction short-circuits.
func (s *Service) HandleWebhook(ctx context.Context, req usecase.WebhookRequest) error {
	if req.Timestamp == "" || req.Nonce == "" || req.Signature == "" {
		return errs.ErrInvalidSignature
	}
	if !s.signer.Verify(req.Timestamp, req.Nonce, string(req.Body), req.Signature) {
		s.logger.Warn("Webhook signature verification failed", map[string]any{
			"timestamp": req.Timestamp,
			"nonce":     req.Nonce,
		})
		return errs.ErrInvalidSignature
	}

	var payload webhookPayload
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrMalformedTradeRef, err.Error())
	}
	var data webhookData
	if err := json.Unmarshal(payload.Data, &data); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrMalformedTradeRef, err.Error())
	}

	orderID, err := parseTradeRef(data.MerchantTradeNo)
	if err != nil {
		s.logger.Warn("Webhook carried malformed trade reference", map[string]any{
			"trade_ref": data.MerchantTradeNo,
		})
		return err
	}

	switch payload.BizStatus {
	case bizStatusPaySuccess:
		return s.reconcileSuccess(ctx, orderID, data.TransactionID)
	case bizStatusPayClosed:
		return s.reconcileClosed(ctx, orderID)
	default:
		s.logger.Info("Ignoring webhook status", map[string]any{
			"order_id":   orderID,
			"biz_status": payload.BizStatus,
		})
		return nil
	}
}

func (s *Service) reconcileSuccess(ctx context.Context, orderID uint64, providerTxID string) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := s.successInTx(txCtx, orderID, providerTxID); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back webhook reconciliation", map[string]any{"error": rbErr.Error()})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit webhook reconciliation", map[string]any{
			"order_id": orderID,
			"error":    err.Error(),
		})
		return err
	}

	s.logger.Info("Payment reconciled", map[string]any{
		"order_id":       orderID,
		"provider_tx_id": providerTxID,
	})
	return nil
}

func (s *Service) successInTx(txCtx context.Context, orderID uint64, providerTxID string) error {
	orders := s.uow.GetOrderRepository(txCtx)
	transactions := s.uow.GetTransactionRepository(txCtx)

	order, err := orders.GetByID(txCtx, orderID)
	if err != nil {
		return err
	}

	latest, err := transactions.LatestByOrder(txCtx, orderID)
	switch {
	case err == nil:
		if latest.Status == entity.TransactionStatusVerified {
			// Webhook redelivery; already reconciled.
			return nil
		}
		if err := transactions.UpdateStatus(txCtx, latest.ID, entity.TransactionStatusVerified); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrTransactionNotFound):
		// Payment went straight through provider checkout with no prior
		// proof submission; record the verified transaction now.
		now := s.timeProvider.Now()
		if err := transactions.Create(txCtx, &entity.Transaction{
			OrderID:      orderID,
			UserID:       order.BuyerID,
			AmountCents:  order.TotalCents,
			ExternalTxID: providerTxID,
			Status:       entity.TransactionStatusVerified,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
	default:
		return err
	}

	if order.Status == entity.OrderStatusPending {
		if err := orders.UpdateStatus(txCtx, orderID, entity.OrderStatusPending, entity.OrderStatusProcessing); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) reconcileClosed(ctx context.Context, orderID uint64) error {
	latest, err := s.txRepo.LatestByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			// Nothing to fail; the order never had a payment attempt recorded.
			return nil
		}
		return err
	}
	if latest.Status != entity.TransactionStatusPending {
		return nil
	}

	if err := s.txRepo.UpdateStatus(ctx, latest.ID, entity.TransactionStatusFailed); err != nil {
		return err
	}

	s.logger.Info("Payment attempt closed", map[string]any{
		"order_id":       orderID,
		"transaction_id": latest.ID,
	})
	return nil
}
