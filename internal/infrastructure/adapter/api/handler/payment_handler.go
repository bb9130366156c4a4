package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/usecase"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/middleware"
)

// Webhook signature headers
const (
	headerTimestamp = "BinancePay-Timestamp"
	headerNonce     = "BinancePay-Nonce"
	headerSignature = "BinancePay-Signature"
)

// PaymentHandler handles payment checkout and webhook requests
type PaymentHandler struct {
	paymentService usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), user.ID, req.OrderID, req.Currency)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PaymentOrderResponse{
		OrderID:     payment.OrderID,
		PrepayID:    payment.PrepayID,
		CheckoutURL: payment.CheckoutURL,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
	})
}

// Status handles GET /payments/:id for the order id
func (h *PaymentHandler) Status(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		respondError(c, domainerr.ErrUnauthenticated)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status, err := h.paymentService.GetPaymentStatus(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentStatusResponse{
		OrderID:           status.OrderID,
		OrderStatus:       string(status.OrderStatus),
		TransactionStatus: string(status.TransactionStatus),
		Amount:            status.Amount,
	})
}

// Webhook handles POST /payments/webhook. The raw body is passed through
// untouched because the signature covers the exact bytes on the wire.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read webhook body", map[string]any{
			"error": err.Error(),
		})
		respondError(c, domainerr.ErrInvalidSignature)
		return
	}

	req := usecase.WebhookRequest{
		Timestamp: c.GetHeader(headerTimestamp),
		Nonce:     c.GetHeader(headerNonce),
		Signature: c.GetHeader(headerSignature),
		Body:      body,
	}

	if err := h.paymentService.HandleWebhook(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookAck{
		ReturnCode:    "SUCCESS",
		ReturnMessage: "OK",
	})
}
