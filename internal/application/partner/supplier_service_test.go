package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/shared"
)

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*partner.Supplier, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// stubProductRepo satisfies catalog.ProductRepository with a fixed set of
// known product IDs.
type stubProductRepo struct {
	known map[uuid.UUID]*catalog.Product
}

func (s *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := s.known[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubProductRepo) FindByName(_ context.Context, _ string) (*catalog.Product, error) {
	return nil, shared.ErrNotFound
}

func (s *stubProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]*catalog.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Save(_ context.Context, _ *catalog.Product) error { return nil }
func (s *stubProductRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }
func (s *stubProductRepo) Count(_ context.Context) (int64, error)           { return 0, nil }
func (s *stubProductRepo) ExistsByName(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()

	product, err := catalog.NewProduct("Widget", decimal.NewFromFloat(9.99), 10, "")
	require.NoError(t, err)
	products := &stubProductRepo{known: map[uuid.UUID]*catalog.Product{product.ID: product}}

	t.Run("creates supplier linked to product", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, products)

		repo.On("Save", ctx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		resp, err := service.Create(ctx, CreateSupplierRequest{
			Name:      "Acme Parts",
			Contact:   "sales@acme.example",
			ProductID: &product.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, "Acme Parts", resp.Name)
		require.NotNil(t, resp.ProductID)
		assert.Equal(t, product.ID, *resp.ProductID)
		repo.AssertExpectations(t)
	})

	t.Run("creates supplier without product link", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, products)

		repo.On("Save", ctx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		resp, err := service.Create(ctx, CreateSupplierRequest{
			Name:    "Acme Parts",
			Contact: "sales@acme.example",
		})
		require.NoError(t, err)
		assert.Nil(t, resp.ProductID)
	})

	t.Run("rejects unknown product reference", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, products)
		unknown := uuid.New()

		_, err := service.Create(ctx, CreateSupplierRequest{
			Name:      "Acme Parts",
			Contact:   "sales@acme.example",
			ProductID: &unknown,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNKNOWN_PRODUCT", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSupplierService_Update(t *testing.T) {
	ctx := context.Background()

	product, err := catalog.NewProduct("Widget", decimal.NewFromFloat(9.99), 10, "")
	require.NoError(t, err)
	products := &stubProductRepo{known: map[uuid.UUID]*catalog.Product{product.ID: product}}

	t.Run("relinks supplier to another product", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, products)

		supplier, err := partner.NewSupplier("Acme Parts", "sales@acme.example", nil)
		require.NoError(t, err)

		repo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		repo.On("Save", ctx, supplier).Return(nil)

		resp, err := service.Update(ctx, supplier.ID, UpdateSupplierRequest{
			Name:      "Acme Parts",
			Contact:   "orders@acme.example",
			ProductID: &product.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, "orders@acme.example", resp.Contact)
		require.NotNil(t, resp.ProductID)
		assert.Equal(t, product.ID, *resp.ProductID)
	})

	t.Run("rejects unknown product reference", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, products)
		unknown := uuid.New()

		supplier, err := partner.NewSupplier("Acme Parts", "sales@acme.example", nil)
		require.NoError(t, err)

		repo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)

		_, err = service.Update(ctx, supplier.ID, UpdateSupplierRequest{
			Name:      "Acme Parts",
			Contact:   "sales@acme.example",
			ProductID: &unknown,
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
