package order

import (
	"context"
	"strings"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
)

// SubmitPaymentProof records the buyer's off-band payment evidence on the
// order and appends a pending transaction for the order total. The order
// status is untouched; verification happens through the payment webhook.
func (s *Service) SubmitPaymentProof(ctx context.Context, buyerID, orderID uint64, proof, externalTxID string) error {
	if strings.TrimSpace(proof) == "" {
		return errs.ErrMissingProof
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.BuyerID != buyerID {
		return errs.ErrOrderNotFound
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := s.submitInTx(txCtx, order, buyerID, proof, externalTxID); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back payment proof", map[string]any{"error": rbErr.Error()})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit payment proof", map[string]any{
			"order_id": orderID,
			"error":    err.Error(),
		})
		return err
	}

	s.logger.Info("Payment proof submitted", map[string]any{
		"order_id": orderID,
		"buyer_id": buyerID,
		"amount":   order.GetTotal(),
	})
	return nil
}

func (s *Service) submitInTx(txCtx context.Context, order *entity.Order, buyerID uint64, proof, externalTxID string) error {
	orders := s.uow.GetOrderRepository(txCtx)
	transactions := s.uow.GetTransactionRepository(txCtx)

	if err := orders.SetPaymentProof(txCtx, order.ID, proof, externalTxID); err != nil {
		return err
	}

	now := s.timeProvider.Now()
	return transactions.Create(txCtx, &entity.Transaction{
		OrderID:      order.ID,
		UserID:       buyerID,
		AmountCents:  order.TotalCents,
		ExternalTxID: externalTxID,
		Proof:        proof,
		Status:       entity.TransactionStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
