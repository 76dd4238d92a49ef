package repository

import "github.com/viewlist/viewlist-api/internal/domain/entity"

// CompanyRepository defines the persistence port for Company (DIP).
// The implementation lives in infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetAll() ([]*entity.Company, error)
	GetByID(id string) (*entity.Company, error)
	GetByGstNo(gstNo string) (*entity.Company, error)
	Update(company *entity.Company) (int64, error)
	Delete(id string) (int64, error)
}
