package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/application/usecase"
	"github.com/viewlist/viewlist-api/internal/domain"
	"github.com/viewlist/viewlist-api/internal/domain/entity"
)

// fakeSalesRepo mimics the adapter contract: unknown company or item ids
// fail with *domain.ForeignKeyError, reads come back enriched.
type fakeSalesRepo struct {
	sales          map[string]*entity.Sale
	knownCompanies map[string]bool
	knownItems     map[string]bool
	updateAffected int64
}

func newFakeSalesRepo() *fakeSalesRepo {
	return &fakeSalesRepo{
		sales:          map[string]*entity.Sale{},
		knownCompanies: map[string]bool{},
		knownItems:     map[string]bool{},
		updateAffected: 1,
	}
}

func (f *fakeSalesRepo) checkRefs(s *entity.Sale) error {
	if !f.knownCompanies[s.CompanyID] {
		return &domain.ForeignKeyError{Field: "companyId"}
	}
	if !f.knownItems[s.ItemID] {
		return &domain.ForeignKeyError{Field: "itemId"}
	}
	return nil
}

func (f *fakeSalesRepo) enrich(s *entity.Sale) *entity.Sale {
	name := "Acme Traders"
	gst := "27ABCDE1234F1Z5"
	itemName := "Steel Rod"
	hsn := "7214"
	out := *s
	out.CompanyName = &name
	out.CompanyGstNo = &gst
	out.ItemName = &itemName
	out.ItemHsnCode = &hsn
	return &out
}

func (f *fakeSalesRepo) Create(s *entity.Sale) error {
	if err := f.checkRefs(s); err != nil {
		return err
	}
	f.sales[s.ID] = s
	return nil
}

func (f *fakeSalesRepo) GetAll() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		out = append(out, f.enrich(s))
	}
	return out, nil
}

func (f *fakeSalesRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	return f.enrich(s), nil
}

func (f *fakeSalesRepo) Update(s *entity.Sale) (int64, error) {
	if _, ok := f.sales[s.ID]; !ok {
		return 0, nil
	}
	if err := f.checkRefs(s); err != nil {
		return 0, err
	}
	if f.updateAffected > 0 {
		existing := f.sales[s.ID]
		s.CreatedAt = existing.CreatedAt
		f.sales[s.ID] = s
	}
	return f.updateAffected, nil
}

func (f *fakeSalesRepo) Delete(id string) (int64, error) {
	if _, ok := f.sales[id]; !ok {
		return 0, nil
	}
	delete(f.sales, id)
	return 1, nil
}

const (
	companyID = "00000000-0000-0000-0000-00000000000a"
	itemID    = "00000000-0000-0000-0000-00000000000b"
)

func salesSetup() (*fakeSalesRepo, *usecase.SalesUseCase) {
	repo := newFakeSalesRepo()
	repo.knownCompanies[companyID] = true
	repo.knownItems[itemID] = true
	return repo, usecase.NewSalesUseCase(repo)
}

func TestSalesCreate_UnknownCompany(t *testing.T) {
	_, uc := salesSetup()
	_, err := uc.Create(dto.CreateSalesRequest{
		CompanyID: "nope", ItemID: itemID, Unit: "PCS",
	})
	fk, ok := domain.AsForeignKey(err)
	require.True(t, ok)
	assert.Equal(t, "companyId", fk.Field)
}

func TestSalesCreate_UnknownItem(t *testing.T) {
	_, uc := salesSetup()
	_, err := uc.Create(dto.CreateSalesRequest{
		CompanyID: companyID, ItemID: "nope", Unit: "PCS",
	})
	fk, ok := domain.AsForeignKey(err)
	require.True(t, ok)
	assert.Equal(t, "itemId", fk.Field)
}

func TestSalesCreateAndGet_Enriched(t *testing.T) {
	_, uc := salesSetup()
	created, err := uc.Create(dto.CreateSalesRequest{
		CompanyID: companyID, ItemID: itemID, Unit: "KGS",
	})
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "KGS", got.Unit)
	require.NotNil(t, got.CompanyName)
	assert.Equal(t, "Acme Traders", *got.CompanyName)
	require.NotNil(t, got.ItemHsnCode)
	assert.Equal(t, "7214", *got.ItemHsnCode)
}

func TestSalesGetByID_Absent(t *testing.T) {
	_, uc := salesSetup()
	got, err := uc.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSalesUpdate_PartialOverlay(t *testing.T) {
	_, uc := salesSetup()
	created, err := uc.Create(dto.CreateSalesRequest{
		CompanyID: companyID, ItemID: itemID, Unit: "PCS",
	})
	require.NoError(t, err)

	unit := "BOX"
	out, changed, err := uc.Update(created.ID, dto.UpdateSalesRequest{Unit: &unit})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "BOX", out.Unit)
	assert.Equal(t, companyID, out.CompanyID)
	assert.Equal(t, itemID, out.ItemID)
}

func TestSalesUpdate_NoChanges(t *testing.T) {
	repo, uc := salesSetup()
	created, err := uc.Create(dto.CreateSalesRequest{
		CompanyID: companyID, ItemID: itemID, Unit: "PCS",
	})
	require.NoError(t, err)

	repo.updateAffected = 0
	unit := "PCS"
	out, changed, err := uc.Update(created.ID, dto.UpdateSalesRequest{Unit: &unit})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, out)
}

func TestSalesUpdate_NotFound(t *testing.T) {
	_, uc := salesSetup()
	unit := "PCS"
	_, _, err := uc.Update("missing", dto.UpdateSalesRequest{Unit: &unit})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestSalesDelete(t *testing.T) {
	_, uc := salesSetup()
	created, err := uc.Create(dto.CreateSalesRequest{
		CompanyID: companyID, ItemID: itemID, Unit: "PCS",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Equal(t, domain.ErrNotFound, uc.Delete(created.ID))
}
