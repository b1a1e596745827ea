package staff

import (
	"fmt"
	"strings"

	"github.com/bizdesk/backend/internal/domain/shared"
)

// Employee represents a staff member shown on the admin console.
// Employees are plain records: the order ledger never touches them.
type Employee struct {
	shared.BaseEntity
	Name  string
	Role  string
	Phone string
	Email string
}

// NewEmployee creates a new employee with required fields
func NewEmployee(name, role, phone, email string) (*Employee, error) {
	e := &Employee{
		BaseEntity: shared.NewBaseEntity(),
	}
	if err := e.set(name, role, phone, email); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the employee's details
func (e *Employee) Update(name, role, phone, email string) error {
	if err := e.set(name, role, phone, email); err != nil {
		return err
	}
	e.Touch()
	return nil
}

func (e *Employee) set(name, role, phone, email string) error {
	if err := validateEmployeeField("name", name, 200); err != nil {
		return err
	}
	if err := validateEmployeeField("role", role, 100); err != nil {
		return err
	}
	if err := validateEmployeeField("phone", phone, 50); err != nil {
		return err
	}
	if err := validateEmployeeField("email", email, 200); err != nil {
		return err
	}

	e.Name = name
	e.Role = role
	e.Phone = phone
	e.Email = email

	return nil
}

func validateEmployeeField(field, value string, maxLen int) error {
	code := "INVALID_" + strings.ToUpper(field)
	if strings.TrimSpace(value) == "" {
		return shared.NewDomainError(code, fmt.Sprintf("Employee %s cannot be empty", field))
	}
	if len(value) > maxLen {
		return shared.NewDomainError(code, fmt.Sprintf("Employee %s cannot exceed %d characters", field, maxLen))
	}
	return nil
}
