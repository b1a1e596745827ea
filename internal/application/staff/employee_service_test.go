package staff

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/staff"
)

// MockEmployeeRepository is a mock implementation of staff.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*staff.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *staff.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates employee", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*staff.Employee")).Return(nil)

		resp, err := service.Create(ctx, CreateEmployeeRequest{
			Name:  "Grace Hopper",
			Role:  "Manager",
			Phone: "555-0200",
			Email: "grace@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "Grace Hopper", resp.Name)
		assert.Equal(t, "Manager", resp.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank role", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		_, err := service.Create(ctx, CreateEmployeeRequest{
			Name:  "Grace Hopper",
			Role:  "   ",
			Phone: "555-0200",
			Email: "grace@example.com",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates employee", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)

		employee, err := staff.NewEmployee("Grace Hopper", "Clerk", "555-0200", "grace@example.com")
		require.NoError(t, err)

		repo.On("FindByID", ctx, employee.ID).Return(employee, nil)
		repo.On("Save", ctx, employee).Return(nil)

		resp, err := service.Update(ctx, employee.ID, UpdateEmployeeRequest{
			Name:  "Grace Hopper",
			Role:  "Manager",
			Phone: "555-0200",
			Email: "grace@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "Manager", resp.Role)
	})

	t.Run("returns not found for unknown employee", func(t *testing.T) {
		repo := new(MockEmployeeRepository)
		service := NewEmployeeService(repo)
		id := uuid.New()

		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateEmployeeRequest{
			Name:  "Grace Hopper",
			Role:  "Manager",
			Phone: "555-0200",
			Email: "grace@example.com",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
