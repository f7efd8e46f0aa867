// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// ServiceError is the error surface of every lifecycle operation. Handlers map
// it to an HTTP response without inspecting message text.
type ServiceError struct {
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeAuthorization  = "AUTHORIZATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeDuplicate      = "DUPLICATE"
	CodeInvalidState   = "INVALID_STATE"
	CodeStorage        = "STORAGE_ERROR"
)

// NewValidationError reports malformed or missing input (400).
func NewValidationError(message string) *ServiceError {
	return &ServiceError{Code: CodeValidation, Message: message, StatusCode: http.StatusBadRequest}
}

// NewAuthenticationError reports bad credentials or an unusable account (401).
func NewAuthenticationError(message string) *ServiceError {
	return &ServiceError{Code: CodeAuthentication, Message: message, StatusCode: http.StatusUnauthorized}
}

// NewAuthorizationError reports a wrong role or non-owner actor (403).
func NewAuthorizationError(message string) *ServiceError {
	return &ServiceError{Code: CodeAuthorization, Message: message, StatusCode: http.StatusForbidden}
}

// NewNotFoundError reports an absent entity (404).
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Code: CodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// NewDuplicateError reports an already-existing application (400).
func NewDuplicateError(message string) *ServiceError {
	return &ServiceError{Code: CodeDuplicate, Message: message, StatusCode: http.StatusBadRequest}
}

// NewInvalidStateError reports an operation that is not valid for the entity's
// current status (400).
func NewInvalidStateError(message string) *ServiceError {
	return &ServiceError{Code: CodeInvalidState, Message: message, StatusCode: http.StatusBadRequest}
}

// NewStorageError wraps a persistence failure on a primary mutation path (500).
func NewStorageError(cause error) *ServiceError {
	return &ServiceError{
		Code:       CodeStorage,
		Message:    "storage operation failed",
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// AsServiceError extracts a ServiceError, or nil if err is something else.
func AsServiceError(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func IsCode(err error, code string) bool {
	if svcErr := AsServiceError(err); svcErr != nil {
		return svcErr.Code == code
	}
	return false
}

// storeErr translates a store failure into the taxonomy: a missing row becomes
// NotFound with the given message, anything else is a storage error.
func storeErr(err error, notFoundMessage string) *ServiceError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError(notFoundMessage)
	}
	return NewStorageError(err)
}
