package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/staff"
	"github.com/bizdesk/backend/internal/infrastructure/persistence/models"
)

// GormEmployeeRepository implements staff.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*staff.Employee, error) {
	var modelList []models.EmployeeModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.EmployeeModel{}), filter, "name", "name ASC")
	if err := query.Find(&modelList).Error; err != nil {
		return nil, mapStoreError(err)
	}

	employees := make([]*staff.Employee, len(modelList))
	for i := range modelList {
		employees[i] = modelList[i].ToDomain()
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *staff.Employee) error {
	var model models.EmployeeModel
	model.FromDomain(employee)
	return mapStoreError(r.db.WithContext(ctx).Save(&model).Error)
}

// Delete removes an employee by ID
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EmployeeModel{}, "id = ?", id)
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of employees
func (r *GormEmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Count(&count).Error; err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}

var _ staff.EmployeeRepository = (*GormEmployeeRepository)(nil)
