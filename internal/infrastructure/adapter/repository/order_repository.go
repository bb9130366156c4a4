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

// OrderRepository implements the OrderRepository port using GORM
type OrderRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an order model with preloaded items to a domain entity
func (r *OrderRepository) modelToEntity(orderModel *model.Order) (*entity.Order, error) {
	status, ok := entity.ParseOrderStatus(orderModel.Status)
	if !ok {
		r.logger.Error("Stored order status is outside the closed set", map[string]any{
			"order_id": orderModel.ID,
			"status":   orderModel.Status,
		})
		return nil, fmt.Errorf("%w: unknown status %q for order %d", errs.ErrInternalServer, orderModel.Status, orderModel.ID)
	}

	items := make([]entity.OrderItem, 0, len(orderModel.Items))
	for _, itemModel := range orderModel.Items {
		items = append(items, entity.OrderItem{
			ID:             itemModel.ID,
			OrderID:        itemModel.OrderID,
			ProductID:      itemModel.ProductID,
			ProductName:    itemModel.ProductName,
			Quantity:       itemModel.Quantity,
			UnitPriceCents: itemModel.UnitPrice,
		})
	}

	return &entity.Order{
		ID:           orderModel.ID,
		BuyerID:      orderModel.BuyerID,
		SellerID:     orderModel.SellerID,
		Status:       status,
		TotalCents:   orderModel.TotalAmount,
		ContactName:  orderModel.ContactName,
		ContactEmail: orderModel.ContactEmail,
		ContactPhone: orderModel.ContactPhone,
		PaymentProof: orderModel.PaymentProof,
		ExternalTxID: orderModel.ExternalTxID,
		PrepayID:     orderModel.PrepayID,
		Items:        items,
		CreatedAt:    orderModel.CreatedAt,
		UpdatedAt:    orderModel.UpdatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *OrderRepository) handleDatabaseError(operation string, err error, orderID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Order not found", map[string]any{
			"order_id": orderID,
		})
		return errs.ErrOrderNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"order_id": orderID,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsSerializationError(err) {
		return errs.ErrConflict
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// Create inserts the order row together with its line items
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	items := make([]model.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPriceCents,
		})
	}

	orderModel := model.Order{
		BuyerID:      order.BuyerID,
		SellerID:     order.SellerID,
		Status:       string(order.Status),
		TotalAmount:  order.TotalCents,
		ContactName:  order.ContactName,
		ContactEmail: order.ContactEmail,
		ContactPhone: order.ContactPhone,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
		Items:        items,
	}

	result := r.db.WithContext(ctx).Create(&orderModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating order", result.Error, 0)
	}

	order.ID = orderModel.ID
	for i := range orderModel.Items {
		order.Items[i].ID = orderModel.Items[i].ID
		order.Items[i].OrderID = orderModel.ID
	}

	r.logger.Info("Order created", map[string]any{
		"order_id": order.ID,
		"buyer_id": order.BuyerID,
		"total":    order.GetTotal(),
		"items":    len(order.Items),
	})
	return nil
}

// GetByID retrieves an order with items attached
func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	var orderModel model.Order
	result := r.db.WithContext(ctx).Preload("Items").First(&orderModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting order", result.Error, id)
	}

	return r.modelToEntity(&orderModel)
}

// listWhere runs a filtered order listing, newest first, with items preloaded
func (r *OrderRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]*entity.Order, error) {
	db := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if query != "" {
		db = db.Where(query, args...)
	}

	var orderModels []model.Order
	result := db.Find(&orderModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing orders", result.Error, 0)
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		order, err := r.modelToEntity(&orderModels[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ListForBuyer lists a buyer's own orders
func (r *OrderRepository) ListForBuyer(ctx context.Context, buyerID uint64) ([]*entity.Order, error) {
	return r.listWhere(ctx, "buyer_id = ?", buyerID)
}

// ListForSeller lists orders assigned to the seller plus the unclaimed pending pool
func (r *OrderRepository) ListForSeller(ctx context.Context, sellerID uint64) ([]*entity.Order, error) {
	return r.listWhere(ctx, "seller_id = ? OR (seller_id IS NULL AND status = ?)",
		sellerID, string(entity.OrderStatusPending))
}

// ListAll lists every order
func (r *OrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return r.listWhere(ctx, "")
}

// Claim performs the conditional claim that closes the seller race: the update
// only applies while the order is still pending and unassigned, so exactly one
// of any number of concurrent claimants wins.
func (r *OrderRepository) Claim(ctx context.Context, orderID, sellerID uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ? AND seller_id IS NULL", orderID, string(entity.OrderStatusPending)).
		Updates(map[string]interface{}{
			"status":     string(entity.OrderStatusProcessing),
			"seller_id":  sellerID,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("claiming order", result.Error, orderID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Order claim lost the race", map[string]any{
			"order_id":  orderID,
			"seller_id": sellerID,
		})
		return errs.ErrOrderAlreadyClaimed
	}

	r.logger.Info("Order claimed", map[string]any{
		"order_id":  orderID,
		"seller_id": sellerID,
	})
	return nil
}

// UpdateStatus transitions the order conditioned on the expected current
// status; zero rows affected means a concurrent writer got there first.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint64, from, to entity.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating order status", result.Error, orderID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Conditional status update affected no rows", map[string]any{
			"order_id": orderID,
			"from":     string(from),
			"to":       string(to),
		})
		return errs.ErrConflict
	}

	r.logger.Info("Order status updated", map[string]any{
		"order_id": orderID,
		"from":     string(from),
		"to":       string(to),
	})
	return nil
}

// SetPaymentProof records the buyer-submitted proof and external txid
func (r *OrderRepository) SetPaymentProof(ctx context.Context, orderID uint64, proof, externalTxID string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_proof":  proof,
			"external_tx_id": externalTxID,
			"updated_at":     r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("recording payment proof", result.Error, orderID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

// SetPrepayID records the provider's prepay reference on the order
func (r *OrderRepository) SetPrepayID(ctx context.Context, orderID uint64, prepayID string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"prepay_id":  prepayID,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("recording prepay id", result.Error, orderID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

// CountByStatus aggregates order counts keyed by status
func (r *OrderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("counting orders", result.Error, 0)
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		status, ok := entity.ParseOrderStatus(row.Status)
		if !ok {
			continue
		}
		counts[status] = row.Count
	}
	return counts, nil
}

// CompletedRevenue sums total_amount over completed orders
func (r *OrderRepository) CompletedRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", string(entity.OrderStatusCompleted)).
		Scan(&revenue)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing revenue", result.Error, 0)
	}
	return revenue, nil
}
