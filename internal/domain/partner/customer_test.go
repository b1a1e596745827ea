package partner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with zero lifetime spend", func(t *testing.T) {
		customer, err := NewCustomer("Alice", "555-0101", "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, customer)

		assert.Equal(t, "Alice", customer.Name)
		assert.Equal(t, "555-0101", customer.Phone)
		assert.Equal(t, "alice@example.com", customer.Email)
		assert.True(t, customer.TotalSpent.Equal(decimal.Zero))
		assert.NotEmpty(t, customer.ID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCustomer("", "555-0101", "alice@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with invalid phone", func(t *testing.T) {
		_, err := NewCustomer("Alice", "not a phone!", "alice@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "phone number format")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewCustomer("Alice", "555-0101", "not-an-email")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email format")
	})
}

func TestCustomer_Update(t *testing.T) {
	customer, err := NewCustomer("Alice", "555-0101", "alice@example.com")
	require.NoError(t, err)
	customer.TotalSpent = decimal.NewFromFloat(30)

	t.Run("updates contact info without touching total spent", func(t *testing.T) {
		err := customer.Update("Alice B", "555-0102", "alice.b@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice B", customer.Name)
		assert.True(t, customer.TotalSpent.Equal(decimal.NewFromFloat(30)))
	})

	t.Run("rejects invalid update", func(t *testing.T) {
		err := customer.Update("Alice B", "555-0102", "broken")
		require.Error(t, err)
		assert.Equal(t, "alice.b@example.com", customer.Email)
	})
}
