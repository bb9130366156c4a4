package auth

import (
	"github.com/example/marketplace/internal/domain/entity"
)

// Claims is the identity carried inside an issued token
type Claims struct {
	UserID uint64
	Role   entity.Role
}

// TokenManager issues and parses signed identity tokens
type TokenManager interface {
	// Issue signs a token for the user; expiry is owned by the implementation
	Issue(userID uint64, role entity.Role) (string, error)
	// Parse validates the token signature and expiry and returns the claims
	Parse(token string) (*Claims, error)
}

// PasswordHasher hashes and verifies user credentials
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
