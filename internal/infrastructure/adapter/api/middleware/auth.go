package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/example/marketplace/internal/domain/entity"
	domainerr "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	"github.com/example/marketplace/internal/domain/port/usecase"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/dto"
)

// userContextKey is the gin context key holding the authenticated user
const userContextKey = "authenticated_user"

// Authenticate resolves the bearer token and attaches the user to the context.
// Requests without a valid token are rejected with 401.
func Authenticate(auth usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(
				domainerr.HTTPStatus(domainerr.ErrUnauthenticated),
				dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
					Message: "Missing or malformed Authorization header",
				})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Token rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(
				domainerr.HTTPStatus(err),
				dto.ErrorResponse{
					Code:    domainerr.ErrorCode(err),
					Message: "Authentication required",
				})
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// SetUser attaches the authenticated user to the request context. Exposed so
// handler tests can exercise authenticated paths without a full token round.
func SetUser(c *gin.Context, user *entity.User) {
	c.Set(userContextKey, user)
}

// RequireRoles rejects requests whose authenticated user is outside the
// allowed role set. It must run after Authenticate.
func RequireRoles(allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFromContext(c)
		if user == nil || !user.Role.In(allowed...) {
			c.AbortWithStatusJSON(
				domainerr.HTTPStatus(domainerr.ErrForbidden),
				dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
					Message: "Operation not permitted for this role",
				})
			return
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated user attached by Authenticate,
// or nil when the request is unauthenticated
func UserFromContext(c *gin.Context) *entity.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
