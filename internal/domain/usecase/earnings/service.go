package earnings

import (
	authport "github.com/example/marketplace/internal/domain/port/auth"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/persistence"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// Service implements usecase.EarningsUseCase. Accrual and the ledger row are
// always written in the same unit of work so the per-seller ledger sum and
// the cumulative earnings column can never diverge.
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	orderRepo    persistence.OrderRepository
	productRepo  persistence.ProductRepository
	hasher       authport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the earnings service
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	orderRepo persistence.OrderRepository,
	productRepo persistence.ProductRepository,
	hasher authport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.EarningsUseCase = (*Service)(nil)
