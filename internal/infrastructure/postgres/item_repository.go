package postgres

import (
	"context"
	"fmt"

	"github.com/viewlist/viewlist-api/internal/domain/entity"
	"github.com/viewlist/viewlist-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements the ItemRepository port over PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the persistence adapter for items.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persists a new item. There is no unique index on hsn_code; the
// use case pre-check is the only HSN guard.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO item (id, name, description, hsn_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.HsnCode, item.Status,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if derr := classify(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetAll returns all items in insertion order.
func (r *ItemRepo) GetAll() ([]*entity.Item, error) {
	query := `
		SELECT id, name, description, hsn_code, status, created_at, updated_at
		FROM item ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.HsnCode, &it.Status,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetByID fetches an item by id. Returns (nil, nil) when absent.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, name, description, hsn_code, status, created_at, updated_at
		FROM item WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.HsnCode, &it.Status,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// GetByHsnCode returns every item carrying the HSN code.
func (r *ItemRepo) GetByHsnCode(hsnCode string) ([]*entity.Item, error) {
	query := `
		SELECT id, name, description, hsn_code, status, created_at, updated_at
		FROM item WHERE hsn_code = $1`
	rows, err := r.q.Query(context.Background(), query, hsnCode)
	if err != nil {
		return nil, fmt.Errorf("get items by hsn_code: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.HsnCode, &it.Status,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update rewrites the row; zero affected rows means the values matched
// the current row.
func (r *ItemRepo) Update(item *entity.Item) (int64, error) {
	query := `
		UPDATE item
		SET name = $2, description = $3, hsn_code = $4, status = $5, updated_at = now()
		WHERE id = $1
		  AND (name, description, hsn_code, status) IS DISTINCT FROM ($2, $3, $4, $5)`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.HsnCode, item.Status,
	)
	if err != nil {
		if derr := classify(err); derr != nil {
			return 0, derr
		}
		return 0, fmt.Errorf("update item: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete removes the row (hard delete, despite older notes suggesting a
// soft delete). Referencing sales block the delete via the FK constraint.
func (r *ItemRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM item WHERE id = $1`, id)
	if err != nil {
		if derr := classify(err); derr != nil {
			return 0, derr
		}
		return 0, fmt.Errorf("delete item: %w", err)
	}
	return cmd.RowsAffected(), nil
}
