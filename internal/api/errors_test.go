package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flakeychalk/forcard/internal/api/shared"
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Name  string `validate:"required"`
	Count int    `validate:"gte=1"`
}

func TestMapErrorToStatusCode(t *testing.T) {
	validatorErr := shared.ValidateRequest(taggedRequest{Count: 1})
	require.Error(t, validatorErr)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "card not found",
			err:            domain.ErrCardNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped card not found",
			err:            fmt.Errorf("toggle: %w", domain.ErrCardNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			err:            domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation error",
			err:            domain.NewValidationError("limit", "must be an integer", domain.ErrValidation),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validator errors",
			err:            validatorErr,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty body",
			err:            shared.ErrEmptyBody,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("unknown error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{
			name:            "nil error",
			err:             nil,
			expectedMessage: "An unexpected error occurred",
		},
		{
			name:            "card not found",
			err:             domain.ErrCardNotFound,
			expectedMessage: "Card not found",
		},
		{
			name:            "field validation",
			err:             domain.NewValidationError("offset", "must be an integer", domain.ErrValidation),
			expectedMessage: "Invalid offset: must be an integer",
		},
		{
			name:            "validator required",
			err:             shared.ValidateRequest(taggedRequest{Count: 1}),
			expectedMessage: "Invalid Name: required field",
		},
		{
			name:            "validator gte",
			err:             shared.ValidateRequest(taggedRequest{Name: "n"}),
			expectedMessage: "Invalid Count: too small",
		},
		{
			name:            "empty body",
			err:             shared.ErrEmptyBody,
			expectedMessage: "Request body is required",
		},
		{
			name:            "internal details are hidden",
			err:             errors.New("index out of range at collection.go:42"),
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMessage, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationErrorFallback(t *testing.T) {
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("not a validator error")))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("default message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cards/x", nil)

		HandleAPIError(rr, req, domain.ErrCardNotFound, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Card not found", decodeBody[shared.ErrorResponse](t, rr).Error)
	})

	t.Run("custom message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)

		HandleAPIError(rr, req, errors.New("boom"), "Could not render cards")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Could not render cards", decodeBody[shared.ErrorResponse](t, rr).Error)
	})
}
