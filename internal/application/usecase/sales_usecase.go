package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/domain"
	"github.com/viewlist/viewlist-api/internal/domain/entity"
	"github.com/viewlist/viewlist-api/internal/domain/repository"
)

// SalesUseCase applies business rules for sales.
type SalesUseCase struct {
	repo repository.SalesRepository
}

// NewSalesUseCase builds the use case with the persistence port.
func NewSalesUseCase(repo repository.SalesRepository) *SalesUseCase {
	return &SalesUseCase{repo: repo}
}

// Create creates a sale. Broken references surface from the adapter as
// *domain.ForeignKeyError naming the offending field; no row is inserted.
func (uc *SalesUseCase) Create(in dto.CreateSalesRequest) (*dto.SalesResponse, error) {
	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		ItemID:    in.ItemID,
		Unit:      in.Unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return toSalesResponse(sale), nil
}

// GetAll lists sales, newest first, enriched with company and item fields.
func (uc *SalesUseCase) GetAll() ([]dto.SalesResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSalesResponse(s))
	}
	return out, nil
}

// GetByID returns a sale or (nil, nil) when it does not exist.
func (uc *SalesUseCase) GetByID(id string) (*dto.SalesResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSalesResponse(sale), nil
}

// Update overlays the provided fields on the current row.
func (uc *SalesUseCase) Update(id string, in dto.UpdateSalesRequest) (*dto.SalesResponse, bool, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, domain.ErrNotFound
	}
	sale := &entity.Sale{
		ID:        id,
		CompanyID: existing.CompanyID,
		ItemID:    existing.ItemID,
		Unit:      existing.Unit,
	}
	if in.CompanyID != nil && *in.CompanyID != "" {
		sale.CompanyID = *in.CompanyID
	}
	if in.ItemID != nil && *in.ItemID != "" {
		sale.ItemID = *in.ItemID
	}
	if in.Unit != nil && *in.Unit != "" {
		sale.Unit = *in.Unit
	}
	affected, err := uc.repo.Update(sale)
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return nil, false, nil
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	return toSalesResponse(updated), true, nil
}

// Delete removes the sale.
func (uc *SalesUseCase) Delete(id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	affected, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toSalesResponse(s *entity.Sale) *dto.SalesResponse {
	if s == nil {
		return nil
	}
	return &dto.SalesResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		ItemID:       s.ItemID,
		Unit:         s.Unit,
		CompanyName:  s.CompanyName,
		CompanyGstNo: s.CompanyGstNo,
		ItemName:     s.ItemName,
		ItemHsnCode:  s.ItemHsnCode,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
