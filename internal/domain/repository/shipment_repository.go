package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// ShipmentRepository defines the persistence port for shipments.
// Create and Update persist header and lines together; GetByID returns the
// shipment with its lines loaded.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	List(limit, offset int) ([]*entity.Shipment, error)
	ListByCustomer(customerID string) ([]*entity.Shipment, error)
	Update(shipment *entity.Shipment) error
	Delete(id string) error
}
