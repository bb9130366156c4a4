package auth

import (
	"context"
	"fmt"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
)

// Authenticate resolves a bearer token to an active user. Any failure along
// the way (bad signature, expiry, unknown or deactivated user) surfaces as
// ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthenticated
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthenticated, err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}

	if !user.IsActive {
		s.logger.Warn("Token presented for inactive account", map[string]any{"user_id": user.ID})
		return nil, errs.ErrUnauthenticated
	}

	return user, nil
}
