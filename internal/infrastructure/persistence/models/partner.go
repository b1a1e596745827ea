package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name       string          `gorm:"type:varchar(200);uniqueIndex;not null"`
	Phone      string          `gorm:"type:varchar(50);not null"`
	Email      string          `gorm:"type:varchar(200);not null"`
	TotalSpent decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		TotalSpent: m.TotalSpent,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.TotalSpent = c.TotalSpent
}

// SupplierModel is the persistence model for the Supplier domain entity.
// The product reference is nulled out when the product is deleted.
type SupplierModel struct {
	BaseModel
	Name      string        `gorm:"type:varchar(200);not null"`
	Contact   string        `gorm:"type:varchar(200);not null"`
	ProductID *uuid.UUID    `gorm:"type:uuid;index"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Contact:    m.Contact,
		ProductID:  m.ProductID,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Contact = s.Contact
	m.ProductID = s.ProductID
}
