package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/domain"
	"github.com/viewlist/viewlist-api/internal/domain/entity"
	"github.com/viewlist/viewlist-api/internal/domain/repository"
)

// CompanyUseCase applies business rules for companies.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with the persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create creates a company. The GST lookup is a friendly pre-check only;
// the unique index on gst_no is the authoritative guard.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByGstNo(in.GstNo)
	if existing != nil {
		return nil, &domain.DuplicateKeyError{Field: "gstNo"}
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		GstNo:     in.GstNo,
		Email:     optional(in.Email),
		Phone:     normalizePhone(optional(in.Phone)),
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Pincode:   in.Pincode,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetAll lists companies in insertion order.
func (uc *CompanyUseCase) GetAll() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

// GetByID returns a company or (nil, nil) when it does not exist.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update rewrites the company row from the request. Returns the updated
// record and whether any row changed; (nil, false, nil) means the values
// were identical to the current row.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, bool, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, domain.ErrNotFound
	}
	company := &entity.Company{
		ID:      id,
		Name:    in.Name,
		GstNo:   in.GstNo,
		Email:   optional(in.Email),
		Phone:   normalizePhone(optional(in.Phone)),
		Address: in.Address,
		City:    in.City,
		State:   in.State,
		Pincode: in.Pincode,
		Status:  in.Status,
	}
	affected, err := uc.repo.Update(company)
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
	return toCompanyResponse(updated), true, nil
}

// Delete removes the company. Fails with domain.ErrNotFound when absent
// and with *domain.ForeignKeyError while sales still reference it.
func (uc *CompanyUseCase) Delete(id string) error {
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

// BulkDelete attempts each id independently. Partial failure is a normal
// outcome: failed ids are reported, not aborted on.
func (uc *CompanyUseCase) BulkDelete(ids []string) (*dto.BulkDeleteResult, error) {
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

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		GstNo:     c.GstNo,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Pincode:   c.Pincode,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// optional maps null and "" to absent.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// normalizePhone prefixes 10-digit local numbers with the +91 country code.
func normalizePhone(p *string) *string {
	if p == nil {
		return nil
	}
	if len(*p) == 10 {
		v := "+91" + *p
		return &v
	}
	return p
}
