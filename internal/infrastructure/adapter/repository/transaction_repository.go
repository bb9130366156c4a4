package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a transaction model to a domain entity
func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           txModel.ID,
		OrderID:      txModel.OrderID,
		UserID:       txModel.UserID,
		AmountCents:  txModel.Amount,
		ExternalTxID: txModel.ExternalTxID,
		Proof:        txModel.Proof,
		Status:       entity.TransactionStatus(txModel.Status),
		CreatedAt:    txModel.CreatedAt,
		UpdatedAt:    txModel.UpdatedAt,
	}
}

// Create appends a new transaction row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.Transaction{
		OrderID:      transaction.OrderID,
		UserID:       transaction.UserID,
		Amount:       transaction.AmountCents,
		ExternalTxID: transaction.ExternalTxID,
		Proof:        transaction.Proof,
		Status:       string(transaction.Status),
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating transaction", map[string]any{
			"order_id": transaction.OrderID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	transaction.ID = txModel.ID

	r.logger.Info("Transaction recorded", map[string]any{
		"transaction_id": transaction.ID,
		"order_id":       transaction.OrderID,
		"amount":         transaction.GetAmount(),
		"status":         string(transaction.Status),
	})
	return nil
}

// LatestByOrder returns the most recent transaction for the order
func (r *TransactionRepository) LatestByOrder(ctx context.Context, orderID uint64) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&txModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Database error when reading transaction", map[string]any{
			"order_id": orderID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return r.modelToEntity(&txModel), nil
}

// UpdateStatus sets the verification status of a transaction
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uint64, status entity.TransactionStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Database error when updating transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Info("Transaction status updated", map[string]any{
		"transaction_id": id,
		"status":         string(status),
	})
	return nil
}
