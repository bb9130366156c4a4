package dto

import (
	"github.com/example/marketplace/internal/domain/entity"
)

// SellerRequest is the payload for creating or updating a seller account
type SellerRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	WalletAddress string `json:"walletAddress"`
	IsActive      *bool  `json:"isActive"`
}

// AssignSaleRequest credits a sale amount to a seller against an order
type AssignSaleRequest struct {
	SellerID uint64 `json:"sellerId" binding:"required"`
	OrderID  uint64 `json:"orderId" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

// AdjustEarningsRequest applies a manual earnings correction
type AdjustEarningsRequest struct {
	Amount string `json:"amount" binding:"required"`
	Op     string `json:"op" binding:"required"` // "add" or "set"
}

// EarningResponse is one ledger row view
type EarningResponse struct {
	ID        uint64  `json:"id"`
	SellerID  uint64  `json:"sellerId"`
	OrderID   *uint64 `json:"orderId,omitempty"`
	Amount    string  `json:"amount"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// NewEarningResponse maps a ledger row to its view
func NewEarningResponse(earning *entity.SellerEarning) EarningResponse {
	return EarningResponse{
		ID:        earning.ID,
		SellerID:  earning.SellerID,
		OrderID:   earning.OrderID,
		Amount:    earning.GetAmount(),
		Note:      earning.Note,
		CreatedAt: earning.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// TopSellerResponse is one row of the top-sellers ranking
type TopSellerResponse struct {
	SellerID uint64 `json:"sellerId"`
	Email    string `json:"email"`
	Earnings string `json:"earnings"`
}

// AnalyticsResponse is the marketplace aggregate view
type AnalyticsResponse struct {
	UsersByRole      map[string]int64    `json:"usersByRole"`
	OrdersByStatus   map[string]int64    `json:"ordersByStatus"`
	CompletedRevenue string              `json:"completedRevenue"`
	ProductCount     int64               `json:"productCount"`
	TotalStock       int64               `json:"totalStock"`
	TopSellers       []TopSellerResponse `json:"topSellers"`
}

// NewAnalyticsResponse maps the analytics snapshot to its view
func NewAnalyticsResponse(snapshot *entity.AnalyticsSnapshot) AnalyticsResponse {
	usersByRole := make(map[string]int64, len(snapshot.UsersByRole))
	for role, count := range snapshot.UsersByRole {
		usersByRole[role.String()] = count
	}

	ordersByStatus := make(map[string]int64, len(snapshot.OrdersByStatus))
	for status, count := range snapshot.OrdersByStatus {
		ordersByStatus[string(status)] = count
	}

	topSellers := make([]TopSellerResponse, 0, len(snapshot.TopSellers))
	for _, seller := range snapshot.TopSellers {
		topSellers = append(topSellers, TopSellerResponse{
			SellerID: seller.SellerID,
			Email:    seller.Email,
			Earnings: entity.CentsToString(seller.EarningsCents),
		})
	}

	return AnalyticsResponse{
		UsersByRole:      usersByRole,
		OrdersByStatus:   ordersByStatus,
		CompletedRevenue: entity.CentsToString(snapshot.CompletedRevenueCents),
		ProductCount:     snapshot.ProductCount,
		TotalStock:       snapshot.TotalStock,
		TopSellers:       topSellers,
	}
}
