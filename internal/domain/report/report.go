// Package report defines read-side aggregates computed from the order ledger.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySales is the total order value booked on a single date.
type DailySales struct {
	OrderDate  string          `json:"order_date"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ProductSales is the cumulative units sold for one product.
type ProductSales struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitsSold   int64     `json:"units_sold"`
}

// CustomerSpend is the cumulative spend of one customer across all orders.
type CustomerSpend struct {
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

// StockLevel is the current on-hand quantity for one product.
type StockLevel struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
}

// Repository exposes aggregate queries over orders, products and customers.
// All threshold filters are strict (greater-than).
type Repository interface {
	// SalesByDateAbove returns per-date sales totals exceeding the threshold,
	// ordered by date ascending.
	SalesByDateAbove(ctx context.Context, threshold decimal.Decimal) ([]DailySales, error)

	// UnitsSoldAbove returns per-product unit totals exceeding the threshold,
	// ordered by units sold descending.
	UnitsSoldAbove(ctx context.Context, threshold int64) ([]ProductSales, error)

	// CustomerSpendAbove returns per-customer spend totals exceeding the
	// threshold, ordered by spend descending.
	CustomerSpendAbove(ctx context.Context, threshold decimal.Decimal) ([]CustomerSpend, error)

	// StockBelow returns products whose on-hand quantity is below the
	// threshold, ordered by quantity ascending.
	StockBelow(ctx context.Context, threshold int64) ([]StockLevel, error)

	// TotalSalesForDate returns the summed order value for one date.
	TotalSalesForDate(ctx context.Context, orderDate string) (decimal.Decimal, error)
}
