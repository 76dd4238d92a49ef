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

// fakeCompanyRepo is an in-memory CompanyRepository. updateAffected and
// deleteErr let tests steer the adapter outcomes.
type fakeCompanyRepo struct {
	companies      map[string]*entity.Company
	updateAffected int64
	deleteErr      error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}, updateAffected: 1}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetAll() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) GetByGstNo(gstNo string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.GstNo == gstNo {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) (int64, error) {
	if _, ok := f.companies[c.ID]; !ok {
		return 0, nil
	}
	if f.updateAffected > 0 {
		existing := f.companies[c.ID]
		c.CreatedAt = existing.CreatedAt
		f.companies[c.ID] = c
	}
	return f.updateAffected, nil
}

func (f *fakeCompanyRepo) Delete(id string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	if _, ok := f.companies[id]; !ok {
		return 0, nil
	}
	delete(f.companies, id)
	return 1, nil
}

func strPtr(s string) *string { return &s }

func createCompanyInput() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:    "Acme Traders",
		GstNo:   "27ABCDE1234F1Z5",
		Email:   strPtr("acme@example.com"),
		Phone:   strPtr("9876543210"),
		Address: "12 Industrial Estate",
		City:    "Mumbai",
		State:   "Maharashtra",
		Pincode: "400001",
		Status:  "active",
	}
}

func TestCompanyCreate_NormalizesPhone(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Create(createCompanyInput())
	require.NoError(t, err)
	require.NotNil(t, out.Phone)
	assert.Equal(t, "+919876543210", *out.Phone)
}

func TestCompanyCreate_DuplicateGST(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.Create(createCompanyInput())
	require.NoError(t, err)

	_, err = uc.Create(createCompanyInput())
	dup, ok := domain.AsDuplicateKey(err)
	require.True(t, ok)
	assert.Equal(t, "gstNo", dup.Field)
}

func TestCompanyCreate_EmptyOptionalBecomesNull(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	in := createCompanyInput()
	in.Email = strPtr("")
	in.Phone = nil
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Nil(t, out.Email)
	assert.Nil(t, out.Phone)
}

func TestCompanyGetByID_Absent(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())
	out, err := uc.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCompanyUpdate_NotFound(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())
	_, _, err := uc.Update("missing", dto.UpdateCompanyRequest{Name: "X"})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestCompanyUpdate_NoChanges(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(createCompanyInput())
	require.NoError(t, err)

	// Zero affected rows means the values matched the current row.
	repo.updateAffected = 0
	out, changed, err := uc.Update(created.ID, dto.UpdateCompanyRequest{Name: "Acme Traders"})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, out)
}

func TestCompanyUpdate_Changed(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(createCompanyInput())
	require.NoError(t, err)

	in := dto.UpdateCompanyRequest{
		Name:    "Acme Traders Pvt Ltd",
		GstNo:   created.GstNo,
		Address: "12 Industrial Estate",
		City:    "Mumbai",
		State:   "Maharashtra",
		Pincode: "400001",
		Status:  "active",
	}
	out, changed, err := uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Acme Traders Pvt Ltd", out.Name)
}

func TestCompanyDelete_NotFound(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanyRepo())
	err := uc.Delete("missing")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestCompanyDelete_ForeignKeyPropagates(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(createCompanyInput())
	require.NoError(t, err)

	repo.deleteErr = &domain.ForeignKeyError{Field: "companyId"}
	err = uc.Delete(created.ID)
	_, ok := domain.AsForeignKey(err)
	assert.True(t, ok)
}

func TestCompanyBulkDelete_PartialFailure(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	a, err := uc.Create(createCompanyInput())
	require.NoError(t, err)
	in := createCompanyInput()
	in.GstNo = "29ABCDE1234F1Z5"
	b, err := uc.Create(in)
	require.NoError(t, err)

	result, err := uc.BulkDelete([]string{a.ID, "missing", b.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, result.DeletedCount)
	assert.Equal(t, []string{"missing"}, result.FailedIDs)
}

func TestCompanyBulkDelete_EmptyFailedIDsSerializesAsArray(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(createCompanyInput())
	require.NoError(t, err)

	result, err := uc.BulkDelete([]string{created.ID})
	require.NoError(t, err)
	assert.NotNil(t, result.FailedIDs)
	assert.Len(t, result.FailedIDs, 0)
}
