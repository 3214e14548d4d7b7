package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// ProductionCostRepository defines the persistence port for production costs.
type ProductionCostRepository interface {
	Create(cost *entity.ProductionCost) error
	GetByID(id string) (*entity.ProductionCost, error)
	List(limit, offset int) ([]*entity.ProductionCost, error)
	ListBySupplier(supplierID string) ([]*entity.ProductionCost, error)
	ListByLot(lotID string) ([]*entity.ProductionCost, error)
	Update(cost *entity.ProductionCost) error
	Delete(id string) error
}
