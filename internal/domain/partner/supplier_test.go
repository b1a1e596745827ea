package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	productID := uuid.New()

	t.Run("creates supplier with product reference", func(t *testing.T) {
		supplier, err := NewSupplier("Acme Co", "orders@acme.example", &productID)
		require.NoError(t, err)
		require.NotNil(t, supplier.ProductID)
		assert.Equal(t, productID, *supplier.ProductID)
	})

	t.Run("allows nil product reference", func(t *testing.T) {
		supplier, err := NewSupplier("Acme Co", "orders@acme.example", nil)
		require.NoError(t, err)
		assert.Nil(t, supplier.ProductID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewSupplier("", "orders@acme.example", nil)
		require.Error(t, err)
	})

	t.Run("fails with empty contact", func(t *testing.T) {
		_, err := NewSupplier("Acme Co", "", nil)
		require.Error(t, err)
	})
}

func TestSupplier_ClearProduct(t *testing.T) {
	productID := uuid.New()
	supplier, err := NewSupplier("Acme Co", "orders@acme.example", &productID)
	require.NoError(t, err)

	supplier.ClearProduct()
	assert.Nil(t, supplier.ProductID)
}
