package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/trade"
	"github.com/bizdesk/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves orders matching the filter, most recent first
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*trade.Order, error) {
	var modelList []models.OrderModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter, "", "order_date DESC, created_at DESC")
	if err := query.Find(&modelList).Error; err != nil {
		return nil, mapStoreError(err)
	}

	orders := make([]*trade.Order, len(modelList))
	for i := range modelList {
		orders[i] = modelList[i].ToDomain()
	}
	return orders, nil
}

// FindByCustomer retrieves all orders placed by one customer
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*trade.Order, error) {
	var modelList []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("order_date DESC, created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, mapStoreError(err)
	}

	orders := make([]*trade.Order, len(modelList))
	for i := range modelList {
		orders[i] = modelList[i].ToDomain()
	}
	return orders, nil
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	var model models.OrderModel
	model.FromDomain(order)
	return mapStoreError(r.db.WithContext(ctx).Save(&model).Error)
}

// Delete removes an order by ID
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Count(&count).Error; err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}

// SumTotalPriceByCustomer returns the sum of total_price over a customer's
// current orders. A customer with no orders sums to zero. The fold runs in
// Go because sqlite executes SUM in floating point, which drifts on
// fractional prices.
func (r *GormOrderRepository) SumTotalPriceByCustomer(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	var prices []decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("customer_id = ?", customerID).
		Pluck("total_price", &prices).Error; err != nil {
		return decimal.Zero, mapStoreError(err)
	}
	return sumDecimals(prices), nil
}

// sumDecimals folds decimal values exactly, outside SQL
func sumDecimals(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
