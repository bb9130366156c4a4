package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/marketplace/internal/domain/entity"
	domainerr "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/usecase"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/middleware"
)

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	orderService usecase.OrderUseCase
	logger       coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(orderService usecase.OrderUseCase, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrEmptyOrder),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), user.ID, items, usecase.ContactInput{
		Name:  req.ContactName,
		Email: req.ContactEmail,
		Phone: req.ContactPhone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// List handles GET /orders, scoped by the acting role
func (h *OrderHandler) List(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderListResponse(orders))
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// UpdateStatus handles PATCH /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidStatus),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	target, valid := entity.ParseOrderStatus(req.Status)
	if !valid {
		respondError(c, domainerr.ErrInvalidStatus)
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), user, id, target, req.SellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// SubmitPaymentProof handles POST /orders/:id/payment-proof
func (h *OrderHandler) SubmitPaymentProof(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingProof),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.orderService.SubmitPaymentProof(c.Request.Context(), user.ID, id, req.Proof, req.ExternalTxID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
