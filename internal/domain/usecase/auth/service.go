package auth

import (
	authport "github.com/example/marketplace/internal/domain/port/auth"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/persistence"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// Service implements usecase.AuthUseCase
type Service struct {
	userRepo     persistence.UserRepository
	tokens       authport.TokenManager
	hasher       authport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the auth service
func NewService(
	userRepo persistence.UserRepository,
	tokens authport.TokenManager,
	hasher authport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		tokens:       tokens,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.AuthUseCase = (*Service)(nil)
