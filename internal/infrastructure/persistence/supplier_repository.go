package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/infrastructure/persistence/models"
)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Supplier, error) {
	var modelList []models.SupplierModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.SupplierModel{}), filter, "name", "name ASC")
	if err := query.Find(&modelList).Error; err != nil {
		return nil, mapStoreError(err)
	}

	suppliers := make([]*partner.Supplier, len(modelList))
	for i := range modelList {
		suppliers[i] = modelList[i].ToDomain()
	}
	return suppliers, nil
}

// FindByProduct retrieves the suppliers linked to one product
func (r *GormSupplierRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*partner.Supplier, error) {
	var modelList []models.SupplierModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("name ASC").
		Find(&modelList).Error; err != nil {
		return nil, mapStoreError(err)
	}

	suppliers := make([]*partner.Supplier, len(modelList))
	for i := range modelList {
		suppliers[i] = modelList[i].ToDomain()
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	var model models.SupplierModel
	model.FromDomain(supplier)
	return mapStoreError(r.db.WithContext(ctx).Save(&model).Error)
}

// Delete removes a supplier by ID
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SupplierModel{}, "id = ?", id)
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of suppliers
func (r *GormSupplierRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SupplierModel{}).Count(&count).Error; err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}

var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
