package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// SupplierRepository defines the persistence port for subcontractors.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	ListByType(supplierType string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}

// SupplierPaymentRepository defines the persistence port for supplier payments.
type SupplierPaymentRepository interface {
	Create(payment *entity.SupplierPayment) error
	GetByID(id string) (*entity.SupplierPayment, error)
	ListBySupplier(supplierID string) ([]*entity.SupplierPayment, error)
	Update(payment *entity.SupplierPayment) error
	Delete(id string) error
}

// SupplierPriceRepository defines the persistence port for price-list entries.
type SupplierPriceRepository interface {
	Create(price *entity.SupplierPrice) error
	ListBySupplier(supplierID string) ([]*entity.SupplierPrice, error)
	Update(price *entity.SupplierPrice) error
	Delete(id string) error
}
