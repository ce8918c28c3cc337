// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"newsdesk/internal/domain/entity"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Message string `json:"message" example:"is required"`
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string       `json:"message" example:"Validation failed"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageBody is returned by endpoints that only acknowledge an action.
type MessageBody struct {
	Message string `json:"message" example:"Article deleted"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, MessageBody{Message: msg})
}

// Validation writes a 400 with one entry per invalid field.
func Validation(w http.ResponseWriter, fields []*entity.ValidationError) {
	body := ErrorBody{Message: "Validation failed", Errors: make([]FieldError, 0, len(fields))}
	for _, f := range fields {
		body.Errors = append(body.Errors, FieldError{Field: f.Field, Message: f.Message})
	}
	JSON(w, http.StatusBadRequest, body)
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (e.g., database errors) are returned as "internal server error",
// with details logged for debugging. Safe errors (validation errors) are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	// messages that are fine to show to clients
	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"already exists",
		"must be",
		"cannot be",
		"too long",
		"too short",
		"too many",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 5xx never leaks details
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, ErrorBody{Message: msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", SanitizeError(err)))
	if code >= 500 {
		JSON(w, code, ErrorBody{Message: "internal server error"})
		return
	}
	JSON(w, code, ErrorBody{Message: http.StatusText(code)})
}

// DomainError maps a use case error onto the HTTP taxonomy:
// validation failures become 400 with field details, missing entities 404,
// anything else a sanitized 500.
func DomainError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, entity.ErrValidationFailed) {
		Validation(w, entity.Fields(err))
		return
	}
	if errors.Is(err, entity.ErrNotFound) {
		SafeError(w, http.StatusNotFound, err)
		return
	}
	SafeError(w, http.StatusInternalServerError, err)
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// SafeErrorV2 handles errors with AppError support.
// If the error is an AppError, it returns the user message and logs the internal error.
// Otherwise, it falls back to SafeError behavior.
func SafeErrorV2(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.Any("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, ErrorBody{Message: appErr.UserMsg})
		return
	}

	SafeError(w, code, err)
}
