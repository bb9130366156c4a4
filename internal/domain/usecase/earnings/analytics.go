package earnings

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// topSellerLimit caps the sellers ranking in the analytics snapshot
const topSellerLimit = 5

// Analytics aggregates the marketplace snapshot: user counts by role, order
// counts by status, completed revenue, catalog totals, and the top sellers.
// The reads are independent; the snapshot is eventually consistent.
func (s *Service) Analytics(ctx context.Context) (*entity.AnalyticsSnapshot, error) {
	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	ordersByStatus, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.orderRepo.CompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	productCount, totalStock, err := s.productRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	topSellers, err := s.userRepo.TopSellers(ctx, topSellerLimit)
	if err != nil {
		return nil, err
	}

	return &entity.AnalyticsSnapshot{
		UsersByRole:           usersByRole,
		OrdersByStatus:        ordersByStatus,
		CompletedRevenueCents: revenue,
		ProductCount:          productCount,
		TotalStock:            totalStock,
		TopSellers:            topSellers,
	}, nil
}
