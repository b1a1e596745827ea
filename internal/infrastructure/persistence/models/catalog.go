package models

import (
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name     string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Price    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Quantity int64           `gorm:"not null;default:0"`
	ImageRef string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Price:      m.Price,
		Quantity:   m.Quantity,
		ImageRef:   m.ImageRef,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Price = p.Price
	m.Quantity = p.Quantity
	m.ImageRef = p.ImageRef
}
