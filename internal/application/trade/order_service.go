package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/trade"
)

// OrderService is the order ledger. Placement, amendment and cancellation
// run a fixed validation chain and apply their derived effects (customer
// spend totals, product stock) in one transaction.
type OrderService struct {
	orderRepo trade.OrderRepository
	scope     TransactionScope
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, scope TransactionScope) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		scope:     scope,
	}
}

// Place validates and records a new order. On success the order's total is
// snapshotted from the quoted price, the customer's spend total is
// recomputed, and the product's stock is reduced, all atomically.
func (s *OrderService) Place(ctx context.Context, input PlaceOrderInput) (*OrderResponse, error) {
	if err := checkPresence(input.CustomerID, input.ProductID, input.Quantity, input.UnitPrice, input.OrderDate); err != nil {
		return nil, err
	}

	var response *OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, product, err := resolveReferences(ctx, repos, input.CustomerID.ID, input.ProductID.ID)
		if err != nil {
			return err
		}

		if err := checkAgainstProduct(product, *input.UnitPrice, *input.Quantity); err != nil {
			return err
		}

		order, err := trade.NewOrder(customer.ID, product.ID, *input.Quantity, *input.UnitPrice, input.OrderDate)
		if err != nil {
			return err
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		if err := applyStockDeduction(ctx, repos, product, order.Quantity); err != nil {
			return err
		}
		if err := recomputeSpend(ctx, repos, customer.ID); err != nil {
			return err
		}

		response = toOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Amend replaces an order's values after re-running the full validation
// chain. Spend totals are recomputed for both the previous and the new
// customer. Stock is reduced by the amended quantity; the original
// deduction is not reversed.
func (s *OrderService) Amend(ctx context.Context, id uuid.UUID, input AmendOrderInput) (*OrderResponse, error) {
	if err := checkPresence(input.CustomerID, input.ProductID, input.Quantity, input.UnitPrice, input.OrderDate); err != nil {
		return nil, err
	}

	var response *OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return trade.NewUnknownOrderError(id)
			}
			return err
		}
		previousCustomerID := order.CustomerID

		customer, product, err := resolveReferences(ctx, repos, input.CustomerID.ID, input.ProductID.ID)
		if err != nil {
			return err
		}

		if err := checkAgainstProduct(product, *input.UnitPrice, *input.Quantity); err != nil {
			return err
		}

		if err := order.Amend(customer.ID, product.ID, *input.Quantity, *input.UnitPrice, input.OrderDate); err != nil {
			return err
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		if err := applyStockDeduction(ctx, repos, product, order.Quantity); err != nil {
			return err
		}
		if err := recomputeSpend(ctx, repos, previousCustomerID); err != nil {
			return err
		}
		if customer.ID != previousCustomerID {
			if err := recomputeSpend(ctx, repos, customer.ID); err != nil {
				return err
			}
		}

		response = toOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Cancel deletes an order and recomputes the customer's spend total.
// Stock deducted at placement is not restored.
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return trade.NewUnknownOrderError(id)
			}
			return err
		}

		if err := repos.OrderRepo().Delete(ctx, id); err != nil {
			return err
		}
		return recomputeSpend(ctx, repos, order.CustomerID)
	})
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List retrieves orders matching the filter
func (s *OrderService) List(ctx context.Context, filter shared.Filter) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListByCustomer retrieves all orders placed by one customer
func (s *OrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// Count returns the number of orders in the ledger
func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.orderRepo.Count(ctx)
}

// checkPresence rejects the first absent field. It runs before any lookup,
// so an order form missing a field never touches the store.
func checkPresence(customerID, productID OrderRef, quantity *int64, unitPrice *decimal.Decimal, orderDate string) error {
	if !customerID.Valid {
		return trade.NewMissingFieldError("customer_id")
	}
	if !productID.Valid {
		return trade.NewMissingFieldError("product_id")
	}
	if quantity == nil {
		return trade.NewMissingFieldError("quantity")
	}
	if unitPrice == nil {
		return trade.NewMissingFieldError("unit_price")
	}
	if orderDate == "" {
		return trade.NewMissingFieldError("order_date")
	}
	return nil
}

// resolveReferences checks the customer first, then the product, matching
// the rejection order callers depend on.
func resolveReferences(ctx context.Context, repos TransactionalRepositories, customerID, productID uuid.UUID) (*partner.Customer, *catalog.Product, error) {
	customer, err := repos.CustomerRepo().FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, trade.NewUnknownCustomerError(customerID)
		}
		return nil, nil, err
	}

	product, err := repos.ProductRepo().FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, trade.NewUnknownProductError(productID)
		}
		return nil, nil, err
	}

	return customer, product, nil
}

// checkAgainstProduct enforces price agreement, then stock sufficiency,
// then quantity positivity, in that order.
func checkAgainstProduct(product *catalog.Product, unitPrice decimal.Decimal, quantity int64) error {
	if !unitPrice.Equal(product.Price) {
		return trade.NewPriceMismatchError(product.Price, unitPrice)
	}
	if quantity > product.Quantity {
		return trade.NewInsufficientStockError(product.Quantity, quantity)
	}
	if quantity <= 0 {
		return trade.NewNonPositiveQuantityError(quantity)
	}
	return nil
}

func applyStockDeduction(ctx context.Context, repos TransactionalRepositories, product *catalog.Product, quantity int64) error {
	if err := product.DeductStock(quantity); err != nil {
		return err
	}
	return repos.ProductRepo().Save(ctx, product)
}

// recomputeSpend derives the customer's spend total from scratch as the sum
// of their remaining orders.
func recomputeSpend(ctx context.Context, repos TransactionalRepositories, customerID uuid.UUID) error {
	total, err := repos.OrderRepo().SumTotalPriceByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	return repos.CustomerRepo().UpdateTotalSpent(ctx, customerID, total)
}
