package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/marketplace/internal/domain/entity"
	authport "github.com/example/marketplace/internal/domain/port/auth"
	coreport "github.com/example/marketplace/internal/domain/port/core"
)

// TokenTTL is how long issued tokens stay valid
const TokenTTL = 7 * 24 * time.Hour

// jwtClaims is the signed token payload
type jwtClaims struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager implements the TokenManager port with HS256-signed JWTs
type JWTManager struct {
	secret       []byte
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a JWT token manager with the given signing secret
func NewJWTManager(secret string, timeProvider coreport.TimeProvider) *JWTManager {
	return &JWTManager{
		secret:       []byte(secret),
		timeProvider: timeProvider,
	}
}

var _ authport.TokenManager = (*JWTManager)(nil)

// Issue signs a token carrying the user id and role, valid for TokenTTL
func (m *JWTManager) Issue(userID uint64, role entity.Role) (string, error) {
	now := m.timeProvider.Now()
	claims := jwtClaims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates the signature and expiry and returns the claims
func (m *JWTManager) Parse(tokenStr string) (*authport.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &authport.Claims{UserID: claims.UserID, Role: role}, nil
}
