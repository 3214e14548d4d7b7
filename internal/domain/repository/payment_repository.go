package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// PaymentRepository defines the persistence port for customer receivables.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
	ListByCustomer(customerID string) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
}
