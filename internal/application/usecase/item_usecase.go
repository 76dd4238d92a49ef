package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/domain"
	"github.com/viewlist/viewlist-api/internal/domain/entity"
	"github.com/viewlist/viewlist-api/internal/domain/repository"
)

// ItemUseCase applies business rules for items.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase builds the use case with the persistence port.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create creates an item. The HSN lookup here is the only uniqueness
// guard for hsn_code; a race between concurrent creates is accepted.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	existing, err := uc.repo.GetByHsnCode(in.HsnCode)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, &domain.DuplicateKeyError{Field: "hsnCode"}
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: optional(in.Description),
		HsnCode:     in.HsnCode,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetAll lists items in insertion order.
func (uc *ItemUseCase) GetAll() ([]dto.ItemResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// GetByID returns an item or (nil, nil) when it does not exist.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByHsnCode returns all items carrying the HSN code.
func (uc *ItemUseCase) GetByHsnCode(hsnCode string) ([]dto.ItemResponse, error) {
	list, err := uc.repo.GetByHsnCode(hsnCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Update overlays the provided fields on the current row. Returns the
// updated record and whether any row changed.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, bool, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, domain.ErrNotFound
	}
	item := &entity.Item{
		ID:          id,
		Name:        in.Name,
		Description: optional(in.Description),
		HsnCode:     existing.HsnCode,
		Status:      existing.Status,
	}
	if in.HsnCode != nil && *in.HsnCode != "" {
		item.HsnCode = *in.HsnCode
	}
	if in.Status != nil && *in.Status != "" {
		item.Status = *in.Status
	}
	affected, err := uc.repo.Update(item)
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
	return toItemResponse(updated), true, nil
}

// Delete removes the item. Fails with *domain.ForeignKeyError while sales
// still reference it.
func (uc *ItemUseCase) Delete(id string) error {
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

// BulkDelete attempts each id independently and reports the ones that
// could not be deleted.
func (uc *ItemUseCase) BulkDelete(ids []string) (*dto.BulkDeleteResult, error) {
	result := &dto.BulkDeleteResult{FailedIDs: []string{}}
	for _, id := range ids {
		affected, err := uc.repo.Delete(id)
		if err != nil || affected == 0 {
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.DeletedCount++
	}
	return result, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		HsnCode:     it.HsnCode,
		Status:      it.Status,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
