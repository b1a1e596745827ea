package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{"MISSING_FIELD", http.StatusBadRequest},
		{"INVALID_NAME", http.StatusBadRequest},
		{"INVALID_PRICE", http.StatusBadRequest},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"INVALID_REFRESH_TOKEN", http.StatusUnauthorized},
		{"NOT_FOUND", http.StatusNotFound},
		{"UNKNOWN_ORDER", http.StatusNotFound},
		{"DUPLICATE_NAME", http.StatusConflict},
		{"DUPLICATE_USERNAME", http.StatusConflict},
		{"UNKNOWN_CUSTOMER", http.StatusUnprocessableEntity},
		{"UNKNOWN_PRODUCT", http.StatusUnprocessableEntity},
		{"PRICE_MISMATCH", http.StatusUnprocessableEntity},
		{"INSUFFICIENT_STOCK", http.StatusUnprocessableEntity},
		{"NON_POSITIVE_QUANTITY", http.StatusUnprocessableEntity},
		{"STORE_UNAVAILABLE", http.StatusServiceUnavailable},
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Order not found", "req-123")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Order not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 41, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
