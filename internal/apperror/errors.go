package apperror

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies an application error.
type ErrorCode int

// System errors (1000-1999)
const (
	ErrInternal ErrorCode = 1000 + iota
	ErrDatabase
)

// Auth errors (2000-2999)
const (
	ErrUnauthorized ErrorCode = 2000 + iota
	ErrForbidden
)

// Request errors (3000-3999)
const (
	ErrInvalidReference ErrorCode = 3000 + iota
	ErrMissingField
	ErrValidation
	ErrNotFound
	ErrConflict
)

// AppError is the error type every layer above the store returns.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a code and message to an existing error.
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func InvalidReference(field string) *AppError {
	return New(ErrInvalidReference, fmt.Sprintf("%s is missing or not a valid id", field))
}

func MissingField(field string) *AppError {
	return New(ErrMissingField, fmt.Sprintf("%s is required", field))
}

func NotFound(what string) *AppError {
	return New(ErrNotFound, fmt.Sprintf("%s not found", what))
}

func Forbidden(message string) *AppError {
	return New(ErrForbidden, message)
}

// CodeOf returns the code of the first AppError in err's chain, or
// ErrInternal when there is none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}
