package partner

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll finds all customers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]*Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete deletes a customer; dependent orders are removed by the
	// store's cascade rule
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all customers
	Count(ctx context.Context) (int64, error)

	// ExistsByName checks whether a customer with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// UpdateTotalSpent rewrites the customer's derived lifetime-spend
	// aggregate; only the order ledger calls this
	UpdateTotalSpent(ctx context.Context, id uuid.UUID, totalSpent decimal.Decimal) error
}
