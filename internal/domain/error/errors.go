package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation        = 4000
	CodeInvalidAmount     = 4002
	CodeInsufficientStock = 4003
	CodeInvalidProduct    = 4004
	CodeInvalidTransition = 4005
	CodeDuplicateEmail    = 4006
	CodeUnauthenticated   = 4010
	CodeForbidden         = 4030
	CodeNotFound          = 4040
	CodeConflict          = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Validation errors (HTTP 400)
var (
	// ErrInvalidAmount is returned when a monetary amount is malformed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNegativeEarnings is returned when an adjustment would drive earnings below zero
	ErrNegativeEarnings = errors.New("earnings cannot be negative")

	// ErrInvalidEmail is returned when an email address is missing or malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrDuplicateEmail is returned when registering an email that already exists
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidRole is returned when a role string is outside the closed set
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidProductName is returned when a product name is empty
	ErrInvalidProductName = errors.New("product name is required")

	// ErrInvalidPrice is returned when a product price is not positive
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrInvalidStock is returned when a stock value is negative
	ErrInvalidStock = errors.New("stock cannot be negative")

	// ErrInvalidCategory is returned when a category reference does not resolve
	ErrInvalidCategory = errors.New("invalid category reference")

	// ErrEmptyOrder is returned when an order is created with no items
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidQuantity is returned when an item quantity is not positive
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrMissingContact is returned when contact name or email is missing
	ErrMissingContact = errors.New("contact name and email are required")

	// ErrInvalidProduct is returned when an ordered product is missing or inactive
	ErrInvalidProduct = errors.New("product is unavailable")

	// ErrInsufficientStock is returned when requested quantity exceeds stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidStatus is returned when a status string is outside the closed set
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition is returned for illegal state machine transitions
	ErrInvalidTransition = errors.New("illegal status transition")

	// ErrMissingProof is returned when a payment proof submission has no proof text
	ErrMissingProof = errors.New("payment proof is required")

	// ErrMalformedTradeRef is returned when a webhook trade reference cannot be parsed
	ErrMalformedTradeRef = errors.New("malformed trade reference")
)

// Authentication and authorization errors (HTTP 401/403)
var (
	// ErrUnauthenticated is returned when the token is absent, invalid, or expired
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredentials is returned when login credentials do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSignature is returned when a webhook signature does not verify
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrForbidden is returned when the acting role lacks the required capability
	ErrForbidden = errors.New("operation not permitted")
)

// Not-found errors (HTTP 404)
var (
	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when the requested product doesn't exist or is inactive
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound is returned when the requested order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrTransactionNotFound is returned when no transaction exists for an order
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// Conflict errors (HTTP 409) - the two check-then-act races closed by
// conditional updates surface as these
var (
	// ErrOrderAlreadyClaimed is returned when a claim races another seller and loses
	ErrOrderAlreadyClaimed = errors.New("order already claimed by another seller")

	// ErrConflict is returned for generic concurrent-update conflicts
	ErrConflict = errors.New("concurrent update conflict")
)

// Storage errors (HTTP 500)
var (
	// ErrStorage is returned for I/O level database failures
	ErrStorage = errors.New("storage error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrInvalidProduct):
		return CodeInvalidProduct
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInvalidStatus):
		return CodeInvalidTransition
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case IsValidationError(err):
		return CodeValidation
	case IsUnauthenticatedError(err):
		return CodeUnauthenticated
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case IsNotFoundError(err):
		return CodeNotFound
	case IsConflictError(err):
		return CodeConflict
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps the error taxonomy to response status codes. Handlers call
// this at the boundary; nothing below the handlers knows about HTTP.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidationError(err):
		return http.StatusBadRequest
	case IsUnauthenticatedError(err):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case IsNotFoundError(err):
		return http.StatusNotFound
	case IsConflictError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsValidationError reports whether the error maps to a 400 response
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrNegativeEarnings) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidProductName) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidStock) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrMissingContact) ||
		errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrMissingProof) ||
		errors.Is(err, ErrMalformedTradeRef)
}

// IsUnauthenticatedError reports whether the error maps to a 401 response
func IsUnauthenticatedError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidSignature)
}

// IsNotFoundError reports whether the error maps to a 404 response
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError reports whether the error maps to a 409 response
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrOrderAlreadyClaimed)
}

// InsufficientStockError carries the stock details for logging and messages
type InsufficientStockError struct {
	ProductID uint64
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Is checks if the target error is ErrInsufficientStock
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientStockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_stock",
		"product_id": e.ProductID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientStock,
	}
}

// NewInsufficientStockError creates a detailed insufficient stock error
func NewInsufficientStockError(productID uint64, requested, available int) error {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

// TransitionError carries the rejected state transition for logging
type TransitionError struct {
	OrderID uint64
	From    string
	To      string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition for order %d: %s -> %s", e.OrderID, e.From, e.To)
}

// Is checks if the target error is ErrInvalidTransition
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "illegal_transition",
		"order_id":   e.OrderID,
		"from":       e.From,
		"to":         e.To,
		"error_code": CodeInvalidTransition,
	}
}

// NewTransitionError creates a detailed illegal transition error
func NewTransitionError(orderID uint64, from, to string) error {
	return &TransitionError{OrderID: orderID, From: from, To: to}
}
