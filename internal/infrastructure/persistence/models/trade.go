package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/trade"
)

// OrderModel is the persistence model for the Order domain entity.
// TotalPrice is the snapshot total computed at placement or amendment.
type OrderModel struct {
	BaseModel
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int64           `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OrderDate  string          `gorm:"type:varchar(10);not null;index"`
	Customer   *CustomerModel  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Product    *ProductModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	return &trade.Order{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		OrderDate:  m.OrderDate,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerID = o.CustomerID
	m.ProductID = o.ProductID
	m.Quantity = o.Quantity
	m.TotalPrice = o.TotalPrice
	m.OrderDate = o.OrderDate
}
