package persistence

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/report"
	"github.com/bizdesk/backend/internal/infrastructure/persistence/models"
)

// GormReportRepository implements report.Repository over the live order,
// product and customer tables. Unit counts aggregate in SQL; money totals
// fold in Go, since sqlite's SUM works in floating point and drifts on
// fractional prices.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// SalesByDateAbove returns per-date sales totals exceeding the threshold
func (r *GormReportRepository) SalesByDateAbove(ctx context.Context, threshold decimal.Decimal) ([]report.DailySales, error) {
	var rows []struct {
		OrderDate  string
		TotalPrice decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("order_date, total_price").
		Scan(&rows).Error; err != nil {
		return nil, mapStoreError(err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		totals[row.OrderDate] = totals[row.OrderDate].Add(row.TotalPrice)
	}

	result := make([]report.DailySales, 0, len(totals))
	for date, total := range totals {
		if total.GreaterThan(threshold) {
			result = append(result, report.DailySales{OrderDate: date, TotalSales: total})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderDate < result[j].OrderDate
	})
	return result, nil
}

// UnitsSoldAbove returns per-product unit totals exceeding the threshold
func (r *GormReportRepository) UnitsSoldAbove(ctx context.Context, threshold int64) ([]report.ProductSales, error) {
	var rows []struct {
		ProductID   uuid.UUID
		ProductName string
		UnitsSold   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("products.id AS product_id, products.name AS product_name, SUM(orders.quantity) AS units_sold").
		Joins("JOIN products ON products.id = orders.product_id").
		Group("products.id, products.name").
		Having("SUM(orders.quantity) > ?", threshold).
		Order("units_sold DESC").
		Scan(&rows).Error; err != nil {
		return nil, mapStoreError(err)
	}

	result := make([]report.ProductSales, len(rows))
	for i, row := range rows {
		result[i] = report.ProductSales{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitsSold:   row.UnitsSold,
		}
	}
	return result, nil
}

// CustomerSpendAbove returns per-customer spend totals exceeding the threshold
func (r *GormReportRepository) CustomerSpendAbove(ctx context.Context, threshold decimal.Decimal) ([]report.CustomerSpend, error) {
	var rows []struct {
		CustomerID   uuid.UUID
		CustomerName string
		TotalPrice   decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("orders.customer_id AS customer_id, customers.name AS customer_name, orders.total_price").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Scan(&rows).Error; err != nil {
		return nil, mapStoreError(err)
	}

	totals := make(map[uuid.UUID]decimal.Decimal)
	names := make(map[uuid.UUID]string)
	for _, row := range rows {
		totals[row.CustomerID] = totals[row.CustomerID].Add(row.TotalPrice)
		names[row.CustomerID] = row.CustomerName
	}

	result := make([]report.CustomerSpend, 0, len(totals))
	for id, total := range totals {
		if total.GreaterThan(threshold) {
			result = append(result, report.CustomerSpend{
				CustomerID:   id,
				CustomerName: names[id],
				TotalSpent:   total,
			})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].TotalSpent.Equal(result[j].TotalSpent) {
			return result[i].TotalSpent.GreaterThan(result[j].TotalSpent)
		}
		return result[i].CustomerName < result[j].CustomerName
	})
	return result, nil
}

// StockBelow returns products whose on-hand quantity is below the threshold
func (r *GormReportRepository) StockBelow(ctx context.Context, threshold int64) ([]report.StockLevel, error) {
	var rows []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("quantity < ?", threshold).
		Order("quantity ASC").
		Find(&rows).Error; err != nil {
		return nil, mapStoreError(err)
	}

	result := make([]report.StockLevel, len(rows))
	for i, row := range rows {
		result[i] = report.StockLevel{
			ProductID:   row.ID,
			ProductName: row.Name,
			Quantity:    row.Quantity,
		}
	}
	return result, nil
}

// TotalSalesForDate returns the summed order value for one date
func (r *GormReportRepository) TotalSalesForDate(ctx context.Context, orderDate string) (decimal.Decimal, error) {
	var prices []decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("order_date = ?", orderDate).
		Pluck("total_price", &prices).Error; err != nil {
		return decimal.Zero, mapStoreError(err)
	}
	return sumDecimals(prices), nil
}

var _ report.Repository = (*GormReportRepository)(nil)
