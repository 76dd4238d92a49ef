package repository

import "github.com/viewlist/viewlist-api/internal/domain/entity"

// UserRepository defines the persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
	UpdateName(id, name string) (int64, error)
	UpdatePassword(id, passwordHash string) (int64, error)
	Delete(id string) (int64, error)
}
