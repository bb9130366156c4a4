package entity

import (
	"strings"
	"time"

	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
)

// User is a marketplace account: buyer, seller, or superuser. Earnings are
// kept in cents and only ever move through the earnings ledger; the field is
// private so callers cannot bypass the accessors.
type User struct {
	ID            uint64
	Email         string
	PasswordHash  string
	Role          Role
	WalletAddress string
	earnings      int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates an active user with zero earnings
func NewUser(email, passwordHash string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidCredentials
	}

	now := timeProvider.Now()
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Earnings returns cumulative earnings in cents
func (u *User) Earnings() int64 {
	return u.earnings
}

// GetEarnings returns cumulative earnings as a two-decimal string
func (u *User) GetEarnings() string {
	return CentsToString(u.earnings)
}

// SetEarnings replaces the earnings value directly (repository use only)
func (u *User) SetEarnings(cents int64, timeProvider coreport.TimeProvider) {
	u.earnings = cents
	u.UpdatedAt = timeProvider.Now()
}

// AccrueEarnings adds a ledgered sale amount to the cumulative earnings.
// Earnings must never go negative.
func (u *User) AccrueEarnings(cents int64, timeProvider coreport.TimeProvider) error {
	if u.earnings+cents < 0 {
		return errs.ErrNegativeEarnings
	}
	u.earnings += cents
	u.UpdatedAt = timeProvider.Now()
	return nil
}
