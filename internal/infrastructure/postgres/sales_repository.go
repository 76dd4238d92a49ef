package postgres

import (
	"context"
	"fmt"

	"github.com/viewlist/viewlist-api/internal/domain/entity"
	"github.com/viewlist/viewlist-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implements the SalesRepository port over PostgreSQL. Reads
// left-join company and item so a sale whose counterpart is missing still
// returns with null enrichment fields.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository builds the persistence adapter for sales.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

const salesSelect = `
	SELECT s.id, s.company_id, s.item_id, s.unit, s.created_at, s.updated_at,
	       c.name, c.gst_no, i.name, i.hsn_code
	FROM sales s
	LEFT JOIN company c ON s.company_id = c.id
	LEFT JOIN item i ON s.item_id = i.id`

// Create persists a new sale. Foreign-key violations come back as
// *domain.ForeignKeyError naming companyId or itemId.
func (r *SalesRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, company_id, item_id, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.ItemID, sale.Unit, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if derr := classify(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetAll returns all sales, newest first, with company/item enrichment.
func (r *SalesRepo) GetAll() ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), salesSelect+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.ItemID, &s.Unit, &s.CreatedAt, &s.UpdatedAt,
			&s.CompanyName, &s.CompanyGstNo, &s.ItemName, &s.ItemHsnCode); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID fetches one enriched sale. Returns (nil, nil) when absent.
func (r *SalesRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), salesSelect+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.CompanyID, &s.ItemID, &s.Unit, &s.CreatedAt, &s.UpdatedAt,
		&s.CompanyName, &s.CompanyGstNo, &s.ItemName, &s.ItemHsnCode,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Update rewrites the row; zero affected rows means no change.
func (r *SalesRepo) Update(sale *entity.Sale) (int64, error) {
	query := `
		UPDATE sales
		SET company_id = $2, item_id = $3, unit = $4, updated_at = now()
		WHERE id = $1
		  AND (company_id, item_id, unit) IS DISTINCT FROM ($2, $3, $4)`
	cmd, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.ItemID, sale.Unit,
	)
	if err != nil {
		if derr := classify(err); derr != nil {
			return 0, derr
		}
		return 0, fmt.Errorf("update sale: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete removes the row (hard delete).
func (r *SalesRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete sale: %w", err)
	}
	return cmd.RowsAffected(), nil
}
