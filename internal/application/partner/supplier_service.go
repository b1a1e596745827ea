package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	productRepo  catalog.ProductRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, productRepo catalog.ProductRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// Create creates a new supplier. The supplied product link, if any, must
// reference an existing catalog product.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	if err := s.checkProductRef(ctx, req.ProductID); err != nil {
		return nil, err
	}

	supplier, err := partner.NewSupplier(req.Name, req.Contact, req.ProductID)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return toSupplierResponse(supplier), nil
}

// Update updates an existing supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkProductRef(ctx, req.ProductID); err != nil {
		return nil, err
	}

	if err := supplier.Update(req.Name, req.Contact, req.ProductID); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return toSupplierResponse(supplier), nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List retrieves suppliers matching the filter
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) ([]*SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(suppliers), nil
}

// ListByProduct retrieves the suppliers linked to one product
func (s *SupplierService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(suppliers), nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// Count returns the number of suppliers
func (s *SupplierService) Count(ctx context.Context) (int64, error) {
	return s.supplierRepo.Count(ctx)
}

func (s *SupplierService) checkProductRef(ctx context.Context, productID *uuid.UUID) error {
	if productID == nil {
		return nil
	}
	_, err := s.productRepo.FindByID(ctx, *productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("UNKNOWN_PRODUCT", "Referenced product does not exist")
		}
		return err
	}
	return nil
}
