package auth

import (
	"context"
	"errors"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// Register creates a buyer account and issues its first token
func (s *Service) Register(ctx context.Context, email, password, walletAddress string) (*usecase.AuthResult, error) {
	if len(password) < 6 {
		return nil, errs.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(email, hash, entity.RoleBuyer, s.timeProvider)
	if err != nil {
		return nil, err
	}
	user.WalletAddress = walletAddress

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			s.logger.Warn("Registration with existing email", map[string]any{"email": user.Email})
		} else {
			s.logger.Error("Failed to create user", map[string]any{
				"email": user.Email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"role":    user.Role.String(),
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}
