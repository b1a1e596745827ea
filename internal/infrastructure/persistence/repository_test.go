package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/staff"
	"github.com/bizdesk/backend/internal/domain/trade"
	"github.com/bizdesk/backend/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.ProductModel{},
		&models.CustomerModel{},
		&models.SupplierModel{},
		&models.EmployeeModel{},
		&models.OrderModel{},
		&models.UserModel{},
	))

	return db
}

func TestGormProductRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product, err := catalog.NewProduct("Widget", decimal.NewFromFloat(9.99), 25, "widget.png")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, product))

	t.Run("round-trips a product", func(t *testing.T) {
		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Widget", found.Name)
		assert.True(t, decimal.NewFromFloat(9.99).Equal(found.Price))
		assert.Equal(t, int64(25), found.Quantity)
		assert.Equal(t, "widget.png", found.ImageRef)
	})

	t.Run("finds by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Widget")
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("reports name existence", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Widget")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByName(ctx, "Gadget")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("persists updates", func(t *testing.T) {
		require.NoError(t, product.Update("Widget", decimal.NewFromFloat(11.00), 30, "widget.png"))
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(30), found.Quantity)
	})

	t.Run("lists and counts", func(t *testing.T) {
		second, err := catalog.NewProduct("Anvil", decimal.NewFromFloat(45), 5, "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, second))

		all, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, all, 2)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, product.ID))
		_, err := repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, product.ID), shared.ErrNotFound)
	})
}

func TestGormCustomerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	customer, err := partner.NewCustomer("Ada Lovelace", "555-0100", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, customer))

	t.Run("round-trips a customer with zero spend", func(t *testing.T) {
		found, err := repo.FindByID(ctx, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", found.Name)
		assert.True(t, found.TotalSpent.IsZero())
	})

	t.Run("updates the derived spend total", func(t *testing.T) {
		require.NoError(t, repo.UpdateTotalSpent(ctx, customer.ID, decimal.NewFromFloat(120.50)))

		found, err := repo.FindByID(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(120.50).Equal(found.TotalSpent))
	})

	t.Run("spend update on unknown customer fails", func(t *testing.T) {
		err := repo.UpdateTotalSpent(ctx, uuid.New(), decimal.NewFromFloat(1))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("reports name existence", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Ada Lovelace")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByName(ctx, "Grace Hopper")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormSupplierRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSupplierRepository(db)
	productRepo := NewGormProductRepository(db)
	ctx := context.Background()

	product, err := catalog.NewProduct("Widget", decimal.NewFromFloat(9.99), 25, "")
	require.NoError(t, err)
	require.NoError(t, productRepo.Save(ctx, product))

	supplier, err := partner.NewSupplier("Acme Parts", "sales@acme.example", &product.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, supplier))

	t.Run("round-trips a supplier with product link", func(t *testing.T) {
		found, err := repo.FindByID(ctx, supplier.ID)
		require.NoError(t, err)
		require.NotNil(t, found.ProductID)
		assert.Equal(t, product.ID, *found.ProductID)
	})

	t.Run("finds by product", func(t *testing.T) {
		linked, err := repo.FindByProduct(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, linked, 1)
		assert.Equal(t, supplier.ID, linked[0].ID)
	})

	t.Run("product deletion clears the link", func(t *testing.T) {
		require.NoError(t, productRepo.Delete(ctx, product.ID))

		found, err := repo.FindByID(ctx, supplier.ID)
		require.NoError(t, err)
		assert.Nil(t, found.ProductID)
	})
}

func TestGormEmployeeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormEmployeeRepository(db)
	ctx := context.Background()

	employee, err := staff.NewEmployee("Grace Hopper", "Manager", "555-0200", "grace@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, employee))

	t.Run("round-trips an employee", func(t *testing.T) {
		found, err := repo.FindByID(ctx, employee.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", found.Name)
		assert.Equal(t, "Manager", found.Role)
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, employee.ID))
		_, err := repo.FindByID(ctx, employee.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormOrderRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	productRepo := NewGormProductRepository(db)
	customerRepo := NewGormCustomerRepository(db)
	ctx := context.Background()

	customer, err := partner.NewCustomer("Ada Lovelace", "555-0100", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, customerRepo.Save(ctx, customer))

	product, err := catalog.NewProduct("Widget", decimal.NewFromFloat(10), 100, "")
	require.NoError(t, err)
	require.NoError(t, productRepo.Save(ctx, product))

	first, err := trade.NewOrder(customer.ID, product.ID, 3, decimal.NewFromFloat(10), "2026-08-01")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := trade.NewOrder(customer.ID, product.ID, 2, decimal.NewFromFloat(10), "2026-08-02")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	t.Run("round-trips an order", func(t *testing.T) {
		found, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, customer.ID, found.CustomerID)
		assert.True(t, decimal.NewFromFloat(30).Equal(found.TotalPrice))
		assert.Equal(t, "2026-08-01", found.OrderDate)
	})

	t.Run("rejects orders for unknown references", func(t *testing.T) {
		orphan, err := trade.NewOrder(uuid.New(), product.ID, 1, decimal.NewFromFloat(10), "2026-08-03")
		require.NoError(t, err)
		assert.Error(t, repo.Save(ctx, orphan))
	})

	t.Run("lists by customer most recent first", func(t *testing.T) {
		orders, err := repo.FindByCustomer(ctx, customer.ID)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "2026-08-02", orders[0].OrderDate)
	})

	t.Run("sums total price by customer", func(t *testing.T) {
		total, err := repo.SumTotalPriceByCustomer(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(50).Equal(total))
	})

	t.Run("sums to zero for a customer with no orders", func(t *testing.T) {
		total, err := repo.SumTotalPriceByCustomer(ctx, uuid.New())
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("customer deletion cascades to orders", func(t *testing.T) {
		require.NoError(t, customerRepo.Delete(ctx, customer.ID))

		_, err := repo.FindByID(ctx, first.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("admin", "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	t.Run("finds by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.True(t, found.VerifyPassword("s3cret-pass"))
	})

	t.Run("reports username existence", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("returns not found for unknown username", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestStoreFailuresSurfaceAsRetryable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assertRetryable := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STORE_UNAVAILABLE", domainErr.Code)
	}

	t.Run("product lookup", func(t *testing.T) {
		_, err := NewGormProductRepository(db).FindByID(ctx, uuid.New())
		assertRetryable(t, err)
	})

	t.Run("customer save", func(t *testing.T) {
		customer, err := partner.NewCustomer("Ada Lovelace", "555-0100", "ada@example.com")
		require.NoError(t, err)
		assertRetryable(t, NewGormCustomerRepository(db).Save(ctx, customer))
	})

	t.Run("order count", func(t *testing.T) {
		_, err := NewGormOrderRepository(db).Count(ctx)
		assertRetryable(t, err)
	})

	t.Run("spend sum", func(t *testing.T) {
		_, err := NewGormOrderRepository(db).SumTotalPriceByCustomer(ctx, uuid.New())
		assertRetryable(t, err)
	})

	t.Run("report aggregate", func(t *testing.T) {
		_, err := NewGormReportRepository(db).TotalSalesForDate(ctx, "2026-08-01")
		assertRetryable(t, err)
	})
}
