package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/usecase"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles superuser seller management, earnings, and analytics
type AdminHandler struct {
	earningsService usecase.EarningsUseCase
	logger          coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(earningsService usecase.EarningsUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		earningsService: earningsService,
		logger:          logger,
	}
}

// ListSellers handles GET /admin/sellers
func (h *AdminHandler) ListSellers(c *gin.Context) {
	sellers, err := h.earningsService.ListSellers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(sellers))
	for _, seller := range sellers {
		out = append(out, dto.NewUserResponse(seller))
	}
	c.JSON(http.StatusOK, out)
}

// CreateSeller handles POST /admin/sellers
func (h *AdminHandler) CreateSeller(c *gin.Context) {
	var req dto.SellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEmail),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	seller, err := h.earningsService.CreateSeller(c.Request.Context(), usecase.SellerInput{
		Email:         req.Email,
		Password:      req.Password,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(seller))
}

// UpdateSeller handles PUT /admin/sellers/:id
func (h *AdminHandler) UpdateSeller(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEmail),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	seller, err := h.earningsService.UpdateSeller(c.Request.Context(), id, usecase.SellerInput{
		Email:         req.Email,
		Password:      req.Password,
		WalletAddress: req.WalletAddress,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(seller))
}

// DeactivateSeller handles DELETE /admin/sellers/:id
func (h *AdminHandler) DeactivateSeller(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.earningsService.DeactivateSeller(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignSale handles POST /admin/earnings/assign
func (h *AdminHandler) AssignSale(c *gin.Context) {
	var req dto.AssignSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	earning, err := h.earningsService.AssignSale(c.Request.Context(), req.SellerID, req.OrderID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewEarningResponse(earning))
}

// AdjustEarnings handles PATCH /admin/sellers/:id/earnings
func (h *AdminHandler) AdjustEarnings(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AdjustEarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	var op usecase.EarningsOp
	switch req.Op {
	case string(usecase.EarningsOpAdd):
		op = usecase.EarningsOpAdd
	case string(usecase.EarningsOpSet):
		op = usecase.EarningsOpSet
	default:
		respondError(c, domainerr.ErrInvalidAmount)
		return
	}

	seller, err := h.earningsService.AdjustEarnings(c.Request.Context(), id, req.Amount, op)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(seller))
}

// Analytics handles GET /admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	snapshot, err := h.earningsService.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalyticsResponse(snapshot))
}
