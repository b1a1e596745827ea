package staff

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizdesk/backend/internal/domain/staff"
)

// CreateEmployeeRequest represents a request to create a new employee
type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Role  string `json:"role" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,max=50"`
	Email string `json:"email" binding:"required,email,max=200"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Role  string `json:"role" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,max=50"`
	Email string `json:"email" binding:"required,email,max=200"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toEmployeeResponse(e *staff.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Phone:     e.Phone,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEmployeeResponses(employees []*staff.Employee) []*EmployeeResponse {
	responses := make([]*EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = toEmployeeResponse(e)
	}
	return responses
}
