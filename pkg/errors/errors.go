// Package errors defines the application failure taxonomy.
//
// Every failure crossing a service boundary is one of the typed errors below,
// each carrying a stable machine-readable code and a correlation id for
// cross-system traceability. Import as `apperrors`.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeAuthorization       = "AUTHORIZATION_ERROR"
	CodeTransientDependency = "TRANSIENT_DEPENDENCY_ERROR"
	CodeUnknown             = "UNKNOWN_ERROR"
)

// AppError is the base failure type. Specialized kinds embed it.
type AppError struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
}

func (e *AppError) Error() string { return e.Message }

// New builds a generic AppError with a fresh correlation id.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message, CorrelationID: uuid.NewString()}
}

// ValidationError reports a violated business rule, optionally pinpointing
// the offending field.
type ValidationError struct {
	AppError
	Field string `json:"field,omitempty"`
}

func NewValidationError(message, field string) *ValidationError {
	return &ValidationError{AppError: *New(CodeValidation, message), Field: field}
}

// NotFoundError reports an absent record of a named entity type.
type NotFoundError struct {
	AppError
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		AppError: *New(CodeNotFound, fmt.Sprintf("%s with id '%s' not found", entity, id)),
		Entity:   entity,
		ID:       id,
	}
}

type ConflictError struct {
	AppError
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{AppError: *New(CodeConflict, message)}
}

type AuthorizationError struct {
	AppError
}

func NewAuthorizationError(message string) *AuthorizationError {
	if message == "" {
		message = "You do not have permission to perform this action"
	}
	return &AuthorizationError{AppError: *New(CodeAuthorization, message)}
}

// TransientDependencyError marks a failure likely to succeed on retry
// (rate limiting, momentary unavailability). The retry policy keys off it.
type TransientDependencyError struct {
	AppError
	Retryable bool `json:"retryable"`
}

func NewTransientDependencyError(message string) *TransientDependencyError {
	return &TransientDependencyError{AppError: *New(CodeTransientDependency, message), Retryable: true}
}

// IsTransient reports whether err (anywhere in its chain) is a
// TransientDependencyError.
func IsTransient(err error) bool {
	var t *TransientDependencyError
	return errors.As(err, &t)
}

// Normalize maps an arbitrary error into the taxonomy. Errors already in the
// taxonomy pass through unchanged (identity preserved); everything else is
// classified by message substrings, falling back to UNKNOWN_ERROR.
func Normalize(err error) error {
	if err == nil {
		return nil
	}

	var (
		app        *AppError
		validation *ValidationError
		notFound   *NotFoundError
		conflict   *ConflictError
		authz      *AuthorizationError
		transient  *TransientDependencyError
	)
	switch {
	case errors.As(err, &validation),
		errors.As(err, &notFound),
		errors.As(err, &conflict),
		errors.As(err, &authz),
		errors.As(err, &transient),
		errors.As(err, &app):
		return err
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "401"), strings.Contains(message, "403"), strings.Contains(message, "unauthorized"):
		return NewAuthorizationError(err.Error())
	case strings.Contains(message, "404"), strings.Contains(message, "not found"):
		return NewNotFoundError("Resource", "unknown")
	case strings.Contains(message, "409"), strings.Contains(message, "conflict"):
		return NewConflictError(err.Error())
	case strings.Contains(message, "429"), strings.Contains(message, "503"), strings.Contains(message, "retry"):
		return NewTransientDependencyError(err.Error())
	}

	return New(CodeUnknown, err.Error())
}
