package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
)

// CustomerRepository defines the persistence port for customers.
// AdjustBalance applies a signed delta atomically in SQL so concurrent
// shipment/payment commands do not clobber each other's updates.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	AdjustBalance(id string, delta decimal.Decimal) error
	SetBalance(id string, balance decimal.Decimal) error
}
