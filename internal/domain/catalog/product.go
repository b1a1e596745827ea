package catalog

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents an item in the catalog.
// It is the aggregate root for catalog operations; its on-hand quantity is
// mutated only by the order ledger or by a direct catalog edit.
type Product struct {
	shared.BaseEntity
	Name     string
	Price    decimal.Decimal
	Quantity int64
	ImageRef string // path reference only, never binary data
}

// NewProduct creates a new product with required fields
func NewProduct(name string, price decimal.Decimal, quantity int64, imageRef string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Quantity:   quantity,
		ImageRef:   imageRef,
	}, nil
}

// Update replaces the product's editable attributes
func (p *Product) Update(name string, price decimal.Decimal, quantity int64, imageRef string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	p.Name = name
	p.Price = price
	p.Quantity = quantity
	p.ImageRef = imageRef
	p.Touch()

	return nil
}

// DeductStock decrements the on-hand quantity by the given amount.
// The caller is responsible for stock-sufficiency validation; this guard
// keeps the on-hand quantity from ever going negative.
func (p *Product) DeductStock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Deduction quantity must be positive")
	}
	if quantity > p.Quantity {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	}

	p.Quantity -= quantity
	p.Touch()

	return nil
}

// HasStock reports whether the requested quantity is available
func (p *Product) HasStock(quantity int64) bool {
	return quantity <= p.Quantity
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return nil
}

func validateQuantity(quantity int64) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Product quantity cannot be negative")
	}
	return nil
}
