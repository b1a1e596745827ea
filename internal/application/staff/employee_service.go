package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/staff"
)

// EmployeeService handles employee-related business operations
type EmployeeService struct {
	employeeRepo staff.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo staff.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := staff.NewEmployee(req.Name, req.Role, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	return toEmployeeResponse(employee), nil
}

// Update updates an existing employee
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := employee.Update(req.Name, req.Role, req.Phone, req.Email); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	return toEmployeeResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List retrieves employees matching the filter
func (s *EmployeeService) List(ctx context.Context, filter shared.Filter) ([]*EmployeeResponse, error) {
	employees, err := s.employeeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// Count returns the number of employees
func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	return s.employeeRepo.Count(ctx)
}
