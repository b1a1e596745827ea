package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Widget", decimal.NewFromFloat(10.0), 5, "images/widget.png")
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Widget", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(10.0)))
		assert.Equal(t, int64(5), product.Quantity)
		assert.Equal(t, "images/widget.png", product.ImageRef)
		assert.NotEmpty(t, product.ID)
	})

	t.Run("allows empty image reference", func(t *testing.T) {
		product, err := NewProduct("Widget", decimal.NewFromFloat(1.5), 0, "")
		require.NoError(t, err)
		assert.Empty(t, product.ImageRef)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", decimal.NewFromFloat(10.0), 5, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Widget", decimal.NewFromFloat(-0.01), 5, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := NewProduct("Widget", decimal.NewFromFloat(10.0), -1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity cannot be negative")
	})
}

func TestProduct_Update(t *testing.T) {
	product, err := NewProduct("Widget", decimal.NewFromFloat(10.0), 5, "")
	require.NoError(t, err)

	t.Run("updates all editable fields", func(t *testing.T) {
		err := product.Update("Gadget", decimal.NewFromFloat(12.5), 8, "images/gadget.png")
		require.NoError(t, err)
		assert.Equal(t, "Gadget", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(12.5)))
		assert.Equal(t, int64(8), product.Quantity)
	})

	t.Run("rejects invalid update", func(t *testing.T) {
		err := product.Update("", decimal.NewFromFloat(12.5), 8, "")
		require.Error(t, err)
		assert.Equal(t, "Gadget", product.Name)
	})
}

func TestProduct_DeductStock(t *testing.T) {
	t.Run("decrements on-hand quantity", func(t *testing.T) {
		product, _ := NewProduct("Widget", decimal.NewFromFloat(10.0), 5, "")
		require.NoError(t, product.DeductStock(3))
		assert.Equal(t, int64(2), product.Quantity)
	})

	t.Run("never goes negative", func(t *testing.T) {
		product, _ := NewProduct("Widget", decimal.NewFromFloat(10.0), 2, "")
		err := product.DeductStock(5)
		require.Error(t, err)
		assert.Equal(t, int64(2), product.Quantity)
	})

	t.Run("rejects non-positive deduction", func(t *testing.T) {
		product, _ := NewProduct("Widget", decimal.NewFromFloat(10.0), 2, "")
		require.Error(t, product.DeductStock(0))
		require.Error(t, product.DeductStock(-1))
	})
}

func TestProduct_HasStock(t *testing.T) {
	product, _ := NewProduct("Widget", decimal.NewFromFloat(10.0), 2, "")
	assert.True(t, product.HasStock(2))
	assert.False(t, product.HasStock(3))
}
