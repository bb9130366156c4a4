package usecase

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
)

// AuthResult bundles the issued token with the authenticated user
type AuthResult struct {
	Token string
	User  *entity.User
}

// AuthUseCase defines identity and access operations
type AuthUseCase interface {
	// Register creates a buyer account and issues a token
	Register(ctx context.Context, email, password, walletAddress string) (*AuthResult, error)

	// Login verifies credentials and issues a token
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Authenticate resolves a bearer token to an active user. It fails with
	// ErrUnauthenticated when the token is absent, invalid, or expired, or
	// when the resolved user is missing or inactive.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
