package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{nil, http.StatusOK},
		{ErrInvalidAmount, http.StatusBadRequest},
		{ErrEmptyOrder, http.StatusBadRequest},
		{ErrInsufficientStock, http.StatusBadRequest},
		{ErrInvalidTransition, http.StatusBadRequest},
		{ErrMalformedTradeRef, http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidSignature, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrOrderNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrOrderAlreadyClaimed, http.StatusConflict},
		{ErrConflict, http.StatusConflict},
		{ErrStorage, http.StatusInternalServerError},
		{ErrInternalServer, http.StatusInternalServerError},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, HTTPStatus(tc.err), "error %v", tc.err)
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: details", ErrOrderAlreadyClaimed)
	assert.Equal(t, http.StatusConflict, HTTPStatus(wrapped))

	wrapped = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(wrapped))
}

func TestErrorCode(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{ErrInvalidAmount, CodeInvalidAmount},
		{ErrInsufficientStock, CodeInsufficientStock},
		{ErrInvalidProduct, CodeInvalidProduct},
		{ErrInvalidTransition, CodeInvalidTransition},
		{ErrInvalidStatus, CodeInvalidTransition},
		{ErrDuplicateEmail, CodeDuplicateEmail},
		{ErrEmptyOrder, CodeValidation},
		{ErrUnauthenticated, CodeUnauthenticated},
		{ErrForbidden, CodeForbidden},
		{ErrOrderNotFound, CodeNotFound},
		{ErrOrderAlreadyClaimed, CodeConflict},
		{ErrInternalServer, CodeInternalServer},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ErrorCode(tc.err), "error %v", tc.err)
	}
}

func TestInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError(42, 5, 2)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Contains(t, err.Error(), "product 42")
	assert.Contains(t, err.Error(), "requested 5")
	assert.Contains(t, err.Error(), "available 2")

	var stockErr *InsufficientStockError
	assert.True(t, errors.As(err, &stockErr))
	assert.Equal(t, uint64(42), stockErr.ProductID)
}

func TestTransitionError(t *testing.T) {
	err := NewTransitionError(7, "completed", "pending")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Contains(t, err.Error(), "completed")
	assert.Contains(t, err.Error(), "pending")
}
