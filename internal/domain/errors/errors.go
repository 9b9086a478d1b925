package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so catalog entries
// still match after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Password-related errors
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Account persistence errors
	ErrAccountStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_STORE_FAILED",
		"建立帳號失敗",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	// Configuration errors
	ErrInvalidConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_CONFIGURATION",
		"系統設定錯誤",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)
)

// HashingError is returned by password hashers when a plaintext cannot be hashed.
// It matches ErrPasswordHashFailed with errors.Is and unwraps to the underlying cause.
type HashingError struct {
	err     error
	details string
}

// NewHashingError creates a password hashing error
func NewHashingError(err error, details string) *HashingError {
	return &HashingError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *HashingError) Error() string {
	if e.err == nil {
		return "password hashing failed: " + e.details
	}

	return errors.Wrap(e.err, "password hashing failed").Error()
}

// Unwrap returns the underlying cause
func (e *HashingError) Unwrap() error {
	return e.err
}

// Is reports whether target is the hashing failure kind
func (e *HashingError) Is(target error) bool {
	return target == error(ErrPasswordHashFailed)
}

// HTTPCode returns the HTTP status code
func (e *HashingError) HTTPCode() int {
	return ErrPasswordHashFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *HashingError) ErrorCode() string {
	return ErrPasswordHashFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *HashingError) Message() string {
	return ErrPasswordHashFailed.Message()
}

// Details returns detailed error information
func (e *HashingError) Details() string {
	return e.details
}

// StoreError is returned by account repositories when persistence cannot complete.
// It always matches ErrAccountStoreFailed; duplicates additionally match ErrAccountAlreadyExists.
type StoreError struct {
	err       error
	details   string
	duplicate bool
}

// NewStoreError creates an account persistence error
func NewStoreError(err error, details string) *StoreError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// NewDuplicateAccountError creates a persistence error for a unique constraint violation
func NewDuplicateAccountError(err error, details string) *StoreError {
	return &StoreError{
		err:       err,
		details:   details,
		duplicate: true,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.err == nil {
		return "account store failed: " + e.details
	}

	return errors.Wrap(e.err, "account store failed").Error()
}

// Unwrap returns the underlying cause
func (e *StoreError) Unwrap() error {
	return e.err
}

// Is reports whether target is one of the store failure kinds
func (e *StoreError) Is(target error) bool {
	if target == error(ErrAccountStoreFailed) {
		return true
	}

	return e.duplicate && target == error(ErrAccountAlreadyExists)
}

// Duplicate reports whether the failure was caused by an existing account
func (e *StoreError) Duplicate() bool {
	return e.duplicate
}

func (e *StoreError) kind() *BaseError {
	if e.duplicate {
		return ErrAccountAlreadyExists
	}

	return ErrAccountStoreFailed
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return e.kind().HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return e.kind().ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return e.kind().Message()
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
