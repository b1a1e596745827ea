package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int64           `json:"quantity" binding:"min=0"`
	ImageRef string          `json:"image_ref" binding:"max=500"`
}

// UpdateProductRequest represents a request to update an existing product
type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int64           `json:"quantity" binding:"min=0"`
	ImageRef string          `json:"image_ref" binding:"max=500"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	ImageRef  string          `json:"image_ref"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		ImageRef:  p.ImageRef,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProductResponses(products []*catalog.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses
}
