package postgres

import (
	"context"
	"fmt"

	"github.com/viewlist/viewlist-api/internal/domain/entity"
	"github.com/viewlist/viewlist-api/internal/domain/repository"
)

// Ensure CompanyRepo implements repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port over PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the persistence adapter for companies.
// Accepts a pool or a tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persists a new company.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO company (id, name, gst_no, email, phone, address, city, state, pincode, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.GstNo, company.Email, company.Phone,
		company.Address, company.City, company.State, company.Pincode, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if derr := classify(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetAll returns all companies in insertion order.
func (r *CompanyRepo) GetAll() ([]*entity.Company, error) {
	query := `
		SELECT id, name, gst_no, email, phone, address, city, state, pincode, status, created_at, updated_at
		FROM company ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.GstNo, &c.Email, &c.Phone, &c.Address,
			&c.City, &c.State, &c.Pincode, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID fetches a company by id. Returns (nil, nil) when absent.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, gst_no, email, phone, address, city, state, pincode, status, created_at, updated_at
		FROM company WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.GstNo, &c.Email, &c.Phone, &c.Address,
		&c.City, &c.State, &c.Pincode, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByGstNo fetches a company by GST number. Returns (nil, nil) when absent.
func (r *CompanyRepo) GetByGstNo(gstNo string) (*entity.Company, error) {
	query := `
		SELECT id, name, gst_no, email, phone, address, city, state, pincode, status, created_at, updated_at
		FROM company WHERE gst_no = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, gstNo).Scan(
		&c.ID, &c.Name, &c.GstNo, &c.Email, &c.Phone, &c.Address,
		&c.City, &c.State, &c.Pincode, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by gst_no: %w", err)
	}
	return &c, nil
}

// Update rewrites the row and reports affected rows. The tuple comparison
// keeps affected at zero when the new values match the current row, so a
// no-op update is distinguishable from a real one.
func (r *CompanyRepo) Update(company *entity.Company) (int64, error) {
	query := `
		UPDATE company
		SET name = $2, gst_no = $3, email = $4, phone = $5, address = $6, city = $7,
		    state = $8, pincode = $9, status = $10, updated_at = now()
		WHERE id = $1
		  AND (name, gst_no, email, phone, address, city, state, pincode, status)
		      IS DISTINCT FROM ($2, $3, $4, $5, $6, $7, $8, $9, $10)`
	cmd, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.GstNo, company.Email, company.Phone,
		company.Address, company.City, company.State, company.Pincode, company.Status,
	)
	if err != nil {
		if derr := classify(err); derr != nil {
			return 0, derr
		}
		return 0, fmt.Errorf("update company: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete removes the row (hard delete) and reports affected rows. A
// foreign-key restriction from referencing sales surfaces as
// *domain.ForeignKeyError.
func (r *CompanyRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM company WHERE id = $1`, id)
	if err != nil {
		if derr := classify(err); derr != nil {
			return 0, derr
		}
		return 0, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected(), nil
}
