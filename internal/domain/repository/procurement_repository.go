package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// RawMaterialRepository defines the persistence port for knitted fabric
// receipts from örme subcontractors.
type RawMaterialRepository interface {
	Create(shipment *entity.RawMaterialShipment) error
	GetByID(id string) (*entity.RawMaterialShipment, error)
	ListBySupplier(supplierID string) ([]*entity.RawMaterialShipment, error)
	Delete(id string) error
}

// YarnShipmentRepository defines the persistence port for yarn receipts.
type YarnShipmentRepository interface {
	Create(shipment *entity.YarnShipment) error
	GetByID(id string) (*entity.YarnShipment, error)
	ListBySupplier(supplierID string) ([]*entity.YarnShipment, error)
	Delete(id string) error
}

// YarnTypeRepository defines the persistence port for yarn specifications.
type YarnTypeRepository interface {
	Create(yarnType *entity.YarnType) error
	GetByID(id string) (*entity.YarnType, error)
	List() ([]*entity.YarnType, error)
	Delete(id string) error
}
