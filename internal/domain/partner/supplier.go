package partner

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Supplier represents a supplier of a single catalog product.
// ProductID is nullable: the reference is cleared when the product is deleted.
type Supplier struct {
	shared.BaseEntity
	Name      string
	Contact   string
	ProductID *uuid.UUID
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(name, contact string, productID *uuid.UUID) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if err := validateSupplierContact(contact); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Contact:    contact,
		ProductID:  productID,
	}, nil
}

// Update updates the supplier's details and supplied-product reference
func (s *Supplier) Update(name, contact string, productID *uuid.UUID) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}
	if err := validateSupplierContact(contact); err != nil {
		return err
	}

	s.Name = name
	s.Contact = contact
	s.ProductID = productID
	s.Touch()

	return nil
}

// ClearProduct removes the supplied-product reference
func (s *Supplier) ClearProduct() {
	s.ProductID = nil
	s.Touch()
}

func validateSupplierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}

func validateSupplierContact(contact string) error {
	if contact == "" {
		return shared.NewDomainError("INVALID_CONTACT", "Supplier contact cannot be empty")
	}
	if len(contact) > 200 {
		return shared.NewDomainError("INVALID_CONTACT", "Supplier contact cannot exceed 200 characters")
	}
	return nil
}
