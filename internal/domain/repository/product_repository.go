package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// ProductRepository defines the persistence port for fabric types.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
