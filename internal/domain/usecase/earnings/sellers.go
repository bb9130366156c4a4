package earnings

import (
	"context"

	"github.com/example/marketplace/internal/domain/entity"
	errs "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// ListSellers lists seller accounts newest first
func (s *Service) ListSellers(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.ListByRole(ctx, entity.RoleSeller)
}

// CreateSeller registers a seller-role account on behalf of the superuser
func (s *Service) CreateSeller(ctx context.Context, input usecase.SellerInput) (*entity.User, error) {
	if len(input.Password) < 6 {
		return nil, errs.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash seller password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	seller, err := entity.NewUser(input.Email, hash, entity.RoleSeller, s.timeProvider)
	if err != nil {
		return nil, err
	}
	seller.WalletAddress = input.WalletAddress

	if err := s.userRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	s.logger.Info("Seller created", map[string]any{
		"seller_id": seller.ID,
		"email":     seller.Email,
	})
	return seller, nil
}

// UpdateSeller updates wallet address, password, or the active flag
func (s *Service) UpdateSeller(ctx context.Context, sellerID uint64, input usecase.SellerInput) (*entity.User, error) {
	seller, err := s.getSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if input.WalletAddress != "" {
		seller.WalletAddress = input.WalletAddress
	}
	if input.Password != "" {
		if len(input.Password) < 6 {
			return nil, errs.ErrInvalidCredentials
		}
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, errs.ErrInternalServer
		}
		seller.PasswordHash = hash
	}
	if input.IsActive != nil {
		seller.IsActive = *input.IsActive
	}
	seller.UpdatedAt = s.timeProvider.Now()

	if err := s.userRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	s.logger.Info("Seller updated", map[string]any{"seller_id": sellerID})
	return seller, nil
}

// DeactivateSeller soft-deactivates the account; rows are never hard-deleted
func (s *Service) DeactivateSeller(ctx context.Context, sellerID uint64) error {
	if _, err := s.getSeller(ctx, sellerID); err != nil {
		return err
	}

	if err := s.userRepo.Deactivate(ctx, sellerID); err != nil {
		return err
	}

	s.logger.Info("Seller deactivated", map[string]any{"seller_id": sellerID})
	return nil
}

func (s *Service) getSeller(ctx context.Context, sellerID uint64) (*entity.User, error) {
	seller, err := s.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller.Role != entity.RoleSeller {
		return nil, errs.ErrUserNotFound
	}
	return seller, nil
}
