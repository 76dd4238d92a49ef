package repository

import "github.com/viewlist/viewlist-api/internal/domain/entity"

// ItemRepository defines the persistence port for Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetAll() ([]*entity.Item, error)
	GetByID(id string) (*entity.Item, error)
	GetByHsnCode(hsnCode string) ([]*entity.Item, error)
	Update(item *entity.Item) (int64, error)
	Delete(id string) (int64, error)
}
