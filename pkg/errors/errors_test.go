package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapCodesAndStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Apartment", nil), "NOT_FOUND", http.StatusNotFound},
		{"validation", Validation("name is required", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{"unauthorized", Unauthorized("Please log in", nil), "UNAUTHORIZED", http.StatusUnauthorized},
		{"unavailable", Unavailable("store is down", nil), "STORE_UNAVAILABLE", http.StatusServiceUnavailable},
		{"invalid data", InvalidData("Vehicle", nil), "INVALID_DATA", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.True(t, Is(tt.err, tt.wantCode))
		})
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Unavailable("Failed to list apartments", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.False(t, Is(cause, "STORE_UNAVAILABLE"))
}
