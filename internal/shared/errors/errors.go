// Package errors provides application-level error types and utilities.
// Each ErrorType maps to exactly one HTTP status at the boundary.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeDuplicate         ErrorType = "duplicate_resource"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeActorUnresolvable ErrorType = "actor_unresolvable"
	ErrorTypeStorage           ErrorType = "storage_failure"
	ErrorTypeInternal          ErrorType = "internal_error"
	ErrorTypeBadRequest        ErrorType = "bad_request"
)

// AppError represents an application error with additional context.
// Details is for logs only and never reaches the client.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: strings.Join(details, "; "),
	}
}

// NewValidationError creates a 400 error. Multiple reasons are joined into
// the message so the caller sees every problem at once.
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewDuplicateError reports a resource id collision. Duplicates are client
// errors, hence 400 rather than 409.
func NewDuplicateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeDuplicate, http.StatusBadRequest, message, details)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

func NewActorUnresolvableError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeActorUnresolvable, http.StatusInternalServerError, message, details)
}

// NewStorageError wraps a backing store failure. The cause goes into
// Details and is never shown to the caller.
func NewStorageError(message string, cause error) *AppError {
	var details []string
	if cause != nil {
		details = append(details, cause.Error())
	}
	return newAppError(ErrorTypeStorage, http.StatusInternalServerError, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

func IsDuplicateResourceError(err error) bool {
	return isType(err, ErrorTypeDuplicate)
}

func IsUnauthorizedError(err error) bool {
	return isType(err, ErrorTypeUnauthorized)
}

func IsStorageError(err error) bool {
	return isType(err, ErrorTypeStorage)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	// MySQL
	if strings.Contains(errStr, "Duplicate entry") {
		return true
	}
	// PostgreSQL
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite
	return strings.Contains(errStr, "UNIQUE constraint failed")
}
