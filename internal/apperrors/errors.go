package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates that a product does not hold enough stock for a sale.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrSupplierInUse indicates that a supplier is still referenced by at least one product.
var ErrSupplierInUse = errors.New("supplier is referenced by products")

// ErrInvalidCredentials indicates a failed login or password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized indicates a missing or invalid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates that a stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrUnsupportedSchema indicates a persisted snapshot written with an unknown schema version.
var ErrUnsupportedSchema = errors.New("unsupported snapshot schema version")

// AppError carries an HTTP-ish status code alongside an underlying infrastructure error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
