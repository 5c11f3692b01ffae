package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/generation"
	"github.com/slidegen/slidegen-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTheme),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Generation pipeline failures are upstream problems
	case errors.Is(err, generation.ErrFetch),
		errors.Is(err, generation.ErrBackendFailure),
		errors.Is(err, generation.ErrInvalidJSON),
		errors.Is(err, generation.ErrSchemaViolation),
		errors.Is(err, generation.ErrCountViolation):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrPresentationNotFound):
		return "Presentation not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrShareTokenExists):
		return "Share token already exists"

	case errors.Is(err, domain.ErrInvalidTheme):
		return "Invalid theme"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	case errors.Is(err, generation.ErrFetchTimeout):
		return "Timed out fetching the source URL"

	case errors.Is(err, generation.ErrFetchStatus):
		return "The source URL returned an error status"

	case errors.Is(err, generation.ErrFetchNetwork),
		errors.Is(err, generation.ErrFetch):
		return "Could not fetch the source URL"

	case errors.Is(err, generation.ErrBackendFailure):
		return "The generation backend failed"

	case errors.Is(err, generation.ErrInvalidJSON),
		errors.Is(err, generation.ErrSchemaViolation),
		errors.Is(err, generation.ErrCountViolation):
		return "The generated deck was invalid"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'GeneratePresentationRequest.Theme' Error:Field validation for 'Theme' failed on the 'oneof' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "url":
		return "invalid URL format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
