package auth

import (
	"context"
	"errors"

	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// Login verifies credentials against the stored hash and issues a token.
// Missing user, wrong password, and deactivated account all collapse into
// ErrInvalidCredentials so the response does not leak which one failed.
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up user for login", map[string]any{"error": err.Error()})
		return nil, err
	}

	if !user.IsActive {
		s.logger.Warn("Login attempt on inactive account", map[string]any{"user_id": user.ID})
		return nil, errs.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("Failed login attempt", map[string]any{"user_id": user.ID})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}
