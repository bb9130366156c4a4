package order

import (
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/persistence"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// Service implements usecase.OrderUseCase. Every multi-statement sequence
// (creation, claim) runs inside the unit of work; the repositories close the
// stock and claim races with conditional updates.
type Service struct {
	uow          persistence.UnitOfWork
	orderRepo    persistence.OrderRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the order service
func NewService(
	uow persistence.UnitOfWork,
	orderRepo persistence.OrderRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		orderRepo:    orderRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.OrderUseCase = (*Service)(nil)
