package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Payment Business Logic (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_001", "Amount must be a finite value greater than zero", http.StatusBadRequest)
}

func ErrInvalidCategory() *AppError {
	return New("PAY_002", "Category must be an integer between 1 and 10", http.StatusBadRequest)
}

func ErrPayeeNotFound() *AppError {
	return New("PAY_003", "Payee not found", http.StatusNotFound)
}

func ErrDuplicateTransaction() *AppError {
	return New("PAY_004", "Duplicate transaction identifier", http.StatusConflict)
}

func ErrInvalidTransition() *AppError {
	return New("PAY_005", "Transaction is not in a completable state", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_006", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a PAY_007 validation error with a caller-supplied message.
func Validation(message string) *AppError {
	return New("PAY_007", message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbiddenActor() *AppError {
	return New("AUTH_002", "Actor is not permitted to access this resource", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrStorageUnavailable wraps a ledger persistence failure. The decision
// pipeline surfaces this to the caller rather than completing a payment
// without a durable record.
func ErrStorageUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Ledger storage unavailable", http.StatusServiceUnavailable, err)
}
