package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// LotFilter narrows lot listings.
type LotFilter struct {
	ProductID string
	Location  string
	Status    string
}

// LotRepository defines the persistence port for fabric lots.
// GetForUpdate locks the row (SELECT FOR UPDATE) so shipment commands can
// mutate RemainingKg without racing each other; use it only inside a tx.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	GetForUpdate(id string) (*entity.Lot, error)
	List(filter LotFilter, limit, offset int) ([]*entity.Lot, error)
	Update(lot *entity.Lot) error
	UpdateRemaining(lot *entity.Lot) error
	Delete(id string) error
}
