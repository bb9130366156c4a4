package dto

import (
	"github.com/example/marketplace/internal/domain/entity"
)

// OrderItemRequest is one requested line of a new order
type OrderItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// CreateOrderRequest is the payload for placing an order
type CreateOrderRequest struct {
	Items        []OrderItemRequest `json:"items" binding:"required"`
	ContactName  string             `json:"contactName" binding:"required"`
	ContactEmail string             `json:"contactEmail" binding:"required"`
	ContactPhone string             `json:"contactPhone"`
}

// UpdateOrderStatusRequest drives the order state machine. SellerID may only
// be supplied by the superuser.
type UpdateOrderStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	SellerID uint64 `json:"sellerId"`
}

// PaymentProofRequest is the payload for submitting payment evidence
type PaymentProofRequest struct {
	Proof        string `json:"proof" binding:"required"`
	ExternalTxID string `json:"externalTxId"`
}

// OrderItemResponse is one line of an order view
type OrderItemResponse struct {
	ProductID   uint64 `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

// OrderResponse is the order view returned to clients
type OrderResponse struct {
	ID           uint64              `json:"id"`
	BuyerID      uint64              `json:"buyerId"`
	SellerID     *uint64             `json:"sellerId,omitempty"`
	Status       string              `json:"status"`
	Total        string              `json:"total"`
	ContactName  string              `json:"contactName"`
	ContactEmail string              `json:"contactEmail"`
	ContactPhone string              `json:"contactPhone,omitempty"`
	PaymentProof string              `json:"paymentProof,omitempty"`
	ExternalTxID string              `json:"externalTxId,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

// NewOrderResponse maps an order entity to its client view
func NewOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.GetUnitPrice(),
			LineTotal:   entity.CentsToString(item.LineTotalCents()),
		})
	}

	return OrderResponse{
		ID:           order.ID,
		BuyerID:      order.BuyerID,
		SellerID:     order.SellerID,
		Status:       string(order.Status),
		Total:        order.GetTotal(),
		ContactName:  order.ContactName,
		ContactEmail: order.ContactEmail,
		ContactPhone: order.ContactPhone,
		PaymentProof: order.PaymentProof,
		ExternalTxID: order.ExternalTxID,
		Items:        items,
		CreatedAt:    order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    order.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// NewOrderListResponse maps a slice of orders
func NewOrderListResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
