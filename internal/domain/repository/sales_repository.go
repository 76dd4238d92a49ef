package repository

import "github.com/viewlist/viewlist-api/internal/domain/entity"

// SalesRepository defines the persistence port for Sale. Read methods
// return sales enriched with company and item fields via left joins.
type SalesRepository interface {
	Create(sale *entity.Sale) error
	GetAll() ([]*entity.Sale, error)
	GetByID(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) (int64, error)
	Delete(id string) (int64, error)
}
