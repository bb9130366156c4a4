package catalog

import (
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/persistence"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// Service implements usecase.CatalogUseCase
type Service struct {
	productRepo  persistence.ProductRepository
	categoryRepo persistence.CategoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the catalog service
func NewService(
	productRepo persistence.ProductRepository,
	categoryRepo persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.CatalogUseCase = (*Service)(nil)
