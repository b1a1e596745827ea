package trade

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDateLayout is the calendar-date format orders are recorded with
const OrderDateLayout = "2006-01-02"

// Order represents a single placed order.
// TotalPrice is a snapshot: unit price at placement time times quantity,
// never re-derived from later catalog price changes.
type Order struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int64
	TotalPrice decimal.Decimal
	OrderDate  string
}

// NewOrder creates an order with the snapshot total computed from the given
// unit price. Reference, price-agreement, and stock checks belong to the
// ledger service; this constructor only guards local invariants.
func NewOrder(customerID, productID uuid.UUID, quantity int64, unitPrice decimal.Decimal, orderDate string) (*Order, error) {
	if quantity <= 0 {
		return nil, NewNonPositiveQuantityError(quantity)
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if err := validateOrderDate(orderDate); err != nil {
		return nil, err
	}

	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(quantity)),
		OrderDate:  orderDate,
	}, nil
}

// Amend overwrites the order's fields and recomputes the snapshot total
// from the new unit price. The ledger re-runs the full validation chain
// before calling this.
func (o *Order) Amend(customerID, productID uuid.UUID, quantity int64, unitPrice decimal.Decimal, orderDate string) error {
	if quantity <= 0 {
		return NewNonPositiveQuantityError(quantity)
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if err := validateOrderDate(orderDate); err != nil {
		return err
	}

	o.CustomerID = customerID
	o.ProductID = productID
	o.Quantity = quantity
	o.TotalPrice = unitPrice.Mul(decimal.NewFromInt(quantity))
	o.OrderDate = orderDate
	o.Touch()

	return nil
}

func validateOrderDate(orderDate string) error {
	if orderDate == "" {
		return shared.NewDomainError("INVALID_DATE", "Order date cannot be empty")
	}
	if _, err := time.Parse(OrderDateLayout, orderDate); err != nil {
		return shared.NewDomainError("INVALID_DATE", "Order date must be in YYYY-MM-DD format")
	}
	return nil
}
