package models

import (
	"github.com/bizdesk/backend/internal/domain/staff"
)

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(200);not null"`
	Role  string `gorm:"type:varchar(100);not null"`
	Phone string `gorm:"type:varchar(50);not null"`
	Email string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *staff.Employee {
	return &staff.Employee{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Role:       m.Role,
		Phone:      m.Phone,
		Email:      m.Email,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *staff.Employee) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Name = e.Name
	m.Role = e.Role
	m.Phone = e.Phone
	m.Email = e.Email
}
