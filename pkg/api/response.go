// Package api defines the HTTP response envelope and the mapping from the
// failure taxonomy to status codes.
package api

import (
	"errors"
	"net/http"

	apperrors "equipment-system/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Response is the uniform envelope for every endpoint.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the taxonomy fields clients key off.
type ErrorBody struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
	Field         string `json:"field,omitempty"`
	Retryable     bool   `json:"retryable,omitempty"`
}

// Success writes a 2xx envelope.
func Success(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, Response{Success: true, Data: data})
}

// Error normalizes err into the taxonomy and writes the matching status.
func Error(ctx echo.Context, err error, logger *zap.Logger) error {
	normalized := apperrors.Normalize(err)
	body := &ErrorBody{Code: apperrors.CodeUnknown, Message: normalized.Error()}
	status := http.StatusInternalServerError

	var (
		validation *apperrors.ValidationError
		notFound   *apperrors.NotFoundError
		conflict   *apperrors.ConflictError
		authz      *apperrors.AuthorizationError
		transient  *apperrors.TransientDependencyError
		app        *apperrors.AppError
	)
	switch {
	case errors.As(normalized, &validation):
		status = http.StatusBadRequest
		body.Code = validation.Code
		body.CorrelationID = validation.CorrelationID
		body.Field = validation.Field
	case errors.As(normalized, &notFound):
		status = http.StatusNotFound
		body.Code = notFound.Code
		body.CorrelationID = notFound.CorrelationID
	case errors.As(normalized, &conflict):
		status = http.StatusConflict
		body.Code = conflict.Code
		body.CorrelationID = conflict.CorrelationID
	case errors.As(normalized, &authz):
		status = http.StatusForbidden
		body.Code = authz.Code
		body.CorrelationID = authz.CorrelationID
	case errors.As(normalized, &transient):
		status = http.StatusServiceUnavailable
		body.Code = transient.Code
		body.CorrelationID = transient.CorrelationID
		body.Retryable = true
	case errors.As(normalized, &app):
		body.Code = app.Code
		body.CorrelationID = app.CorrelationID
	}

	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			zap.String("code", body.Code),
			zap.String("correlationId", body.CorrelationID),
			zap.Error(err),
		)
	}

	return ctx.JSON(status, Response{Success: false, Error: body})
}
