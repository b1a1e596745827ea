package staff

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// FindByID finds an employee by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindAll finds all employees matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]*Employee, error)

	// Save creates or updates an employee
	Save(ctx context.Context, employee *Employee) error

	// Delete deletes an employee
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all employees
	Count(ctx context.Context) (int64, error)
}
