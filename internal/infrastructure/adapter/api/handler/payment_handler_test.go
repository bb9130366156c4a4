package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/marketplace/internal/domain/entity"
	domainerr "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/middleware"
	coremocks "github.com/example/marketplace/mocks/port/core"
)

func TestPaymentCreateRequestValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	asBuyer := func(c *gin.Context) {
		middleware.SetUser(c, &entity.User{ID: 1, Role: entity.RoleBuyer, IsActive: true})
	}

	newRouter := func(t *testing.T, pre ...gin.HandlerFunc) *gin.Engine {
		h := NewPaymentHandler(nil, coremocks.NewMockLogger(t))
		router := gin.New()
		router.POST("/payments", append(pre, h.Create)...)
		return router
	}

	t.Run("Malformed body answers with the validation code", func(t *testing.T) {
		router := newRouter(t, asBuyer)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeValidation, resp.Code)
	})

	t.Run("Missing user answers 401", func(t *testing.T) {
		router := newRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"orderId":1}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
