package trade

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]*Order, error)

	// FindByCustomer finds all orders belonging to a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all orders
	Count(ctx context.Context) (int64, error)

	// SumTotalPriceByCustomer computes the customer's lifetime spend as the
	// sum of total_price over their current orders; the ledger uses the
	// full recompute so the aggregate is self-correcting
	SumTotalPriceByCustomer(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)
}
