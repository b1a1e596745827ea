package trade

import (
	"fmt"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rejection codes for the order ledger. Each validation-chain failure maps
// 1:1 to one of these so callers and tests can assert on the violated rule,
// never on a generic failure.
const (
	RejectionMissingField        = "MISSING_FIELD"
	RejectionUnknownCustomer     = "UNKNOWN_CUSTOMER"
	RejectionUnknownProduct      = "UNKNOWN_PRODUCT"
	RejectionUnknownOrder        = "UNKNOWN_ORDER"
	RejectionPriceMismatch       = "PRICE_MISMATCH"
	RejectionInsufficientStock   = "INSUFFICIENT_STOCK"
	RejectionNonPositiveQuantity = "NON_POSITIVE_QUANTITY"
)

// NewMissingFieldError reports a blank required field
func NewMissingFieldError(field string) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(RejectionMissingField,
		fmt.Sprintf("Required field %q is missing", field),
		map[string]any{"field": field})
}

// NewUnknownCustomerError reports a customer reference that did not resolve
func NewUnknownCustomerError(customerID uuid.UUID) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(RejectionUnknownCustomer,
		"Customer does not exist",
		map[string]any{"customer_id": customerID.String()})
}

// NewUnknownProductError reports a product reference that did not resolve
func NewUnknownProductError(productID uuid.UUID) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(RejectionUnknownProduct,
		"Product does not exist",
		map[string]any{"product_id": productID.String()})
}

// NewUnknownOrderError reports an order reference that did not resolve
func NewUnknownOrderError(orderID uuid.UUID) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(RejectionUnknownOrder,
		"Order does not exist",
		map[string]any{"order_id": orderID.String()})
}

// NewPriceMismatchError reports a claimed unit price that differs from the
// product's current catalog price
func NewPriceMismatchError(expected, actual decimal.Decimal) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(RejectionPriceMismatch,
		fmt.Sprintf("Price mismatch: expected %s, entered %s", expected, actual),
		map[string]any{
			"expected": expected.String(),
			"actual":   actual.String(),
		})
}

// NewInsufficientStockError reports a requested quantity above on-hand stock
func NewInsufficientStockError(available, requested int64) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(RejectionInsufficientStock,
		fmt.Sprintf("Insufficient stock: available %d, requested %d", available, requested),
		map[string]any{
			"available": available,
			"requested": requested,
		})
}

// NewNonPositiveQuantityError reports a quantity that is not greater than zero
func NewNonPositiveQuantityError(quantity int64) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(RejectionNonPositiveQuantity,
		"Quantity must be greater than zero",
		map[string]any{"quantity": quantity})
}
