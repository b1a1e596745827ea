package trade

import (
	"errors"
	"testing"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRejection asserts that err is a DomainError with the given code
func assertRejection(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %T", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestRejectionDetails(t *testing.T) {
	t.Run("price mismatch carries expected and actual", func(t *testing.T) {
		err := NewPriceMismatchError(decimal.NewFromFloat(10.0), decimal.NewFromFloat(9.99))
		assert.Equal(t, RejectionPriceMismatch, err.Code)
		assert.Equal(t, "10", err.Details["expected"])
		assert.Equal(t, "9.99", err.Details["actual"])
		assert.Contains(t, err.Message, "expected 10")
	})

	t.Run("insufficient stock carries available and requested", func(t *testing.T) {
		err := NewInsufficientStockError(2, 5)
		assert.Equal(t, RejectionInsufficientStock, err.Code)
		assert.Equal(t, int64(2), err.Details["available"])
		assert.Equal(t, int64(5), err.Details["requested"])
	})

	t.Run("missing field names the field", func(t *testing.T) {
		err := NewMissingFieldError("customer_id")
		assert.Equal(t, RejectionMissingField, err.Code)
		assert.Equal(t, "customer_id", err.Details["field"])
	})
}
