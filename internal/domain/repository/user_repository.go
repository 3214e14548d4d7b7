package repository

import "github.com/kumasoglu/tekstil-api/internal/domain/entity"

// UserRepository defines the persistence port for application accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
