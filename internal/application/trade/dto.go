package trade

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/trade"
)

// OrderRef is a reference field on the order form. Omitted, null and blank
// JSON values all read as absent, so missing-field reporting stays with the
// validation chain rather than the JSON decoder.
type OrderRef struct {
	ID    uuid.UUID
	Valid bool
}

// RefTo returns a present reference to the given ID
func RefTo(id uuid.UUID) OrderRef {
	return OrderRef{ID: id, Valid: true}
}

func (r *OrderRef) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*r = OrderRef{}
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return err
	}
	*r = RefTo(id)
	return nil
}

func (r OrderRef) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte(`""`), nil
	}
	return json.Marshal(r.ID)
}

// PlaceOrderInput carries the raw order form. Reference and pointer fields
// distinguish an absent value from a zero one, so missing-field rejections
// fire before any other check.
type PlaceOrderInput struct {
	CustomerID OrderRef         `json:"customer_id"`
	ProductID  OrderRef         `json:"product_id"`
	Quantity   *int64           `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	OrderDate  string           `json:"order_date" binding:"omitempty,dateformat"`
}

// AmendOrderInput carries replacement values for an existing order. The same
// validation chain as placement runs against the new values.
type AmendOrderInput struct {
	CustomerID OrderRef         `json:"customer_id"`
	ProductID  OrderRef         `json:"product_id"`
	Quantity   *int64           `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	OrderDate  string           `json:"order_date" binding:"omitempty,dateformat"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OrderDate  string          `json:"order_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func toOrderResponse(o *trade.Order) *OrderResponse {
	return &OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		OrderDate:  o.OrderDate,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func toOrderResponses(orders []*trade.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}
