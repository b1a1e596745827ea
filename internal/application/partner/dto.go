package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/partner"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"required,max=50"`
	Email string `json:"email" binding:"required,email,max=200"`
}

// UpdateCustomerRequest represents a request to update a customer.
// Total spent is derived from the order ledger and cannot be set here.
type UpdateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"required,max=50"`
	Email string `json:"email" binding:"required,email,max=200"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func toCustomerResponse(c *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		TotalSpent: c.TotalSpent,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toCustomerResponses(customers []*partner.Customer) []*CustomerResponse {
	responses := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toCustomerResponse(c)
	}
	return responses
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Contact   string     `json:"contact" binding:"required,max=200"`
	ProductID *uuid.UUID `json:"product_id"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Contact   string     `json:"contact" binding:"required,max=200"`
	ProductID *uuid.UUID `json:"product_id"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Contact   string     `json:"contact"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toSupplierResponse(s *partner.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		ProductID: s.ProductID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSupplierResponses(suppliers []*partner.Supplier) []*SupplierResponse {
	responses := make([]*SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		responses[i] = toSupplierResponse(s)
	}
	return responses
}
