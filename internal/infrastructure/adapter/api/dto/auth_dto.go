package dto

import (
	"github.com/example/marketplace/internal/domain/entity"
)

// RegisterRequest is the payload for buyer registration
type RegisterRequest struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	WalletAddress string `json:"walletAddress"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID            uint64 `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	WalletAddress string `json:"walletAddress,omitempty"`
	Earnings      string `json:"earnings,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt"`
}

// AuthResponse bundles the issued token with the account view
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its public view. Earnings are only
// exposed for sellers.
func NewUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Role:          user.Role.String(),
		WalletAddress: user.WalletAddress,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if user.Role == entity.RoleSeller {
		resp.Earnings = user.GetEarnings()
	}
	return resp
}
