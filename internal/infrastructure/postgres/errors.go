package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/viewlist/viewlist-api/internal/domain"
)

// constraintFields maps constraint names to the API field they guard.
// Classification happens here, in the adapter; handlers only see the
// typed domain errors.
var constraintFields = map[string]string{
	"company_gst_no_key":    "gstNo",
	"company_email_key":     "email",
	"users_email_key":       "email",
	"sales_company_id_fkey": "companyId",
	"sales_item_id_fkey":    "itemId",
}

// classify translates PostgreSQL integrity errors (unique_violation,
// foreign_key_violation) into typed domain errors. Returns nil for
// anything else.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	field := constraintFields[pgErr.ConstraintName]
	switch pgErr.Code {
	case "23505": // unique_violation
		return &domain.DuplicateKeyError{Field: field}
	case "23503": // foreign_key_violation
		return &domain.ForeignKeyError{Field: field}
	}
	return nil
}

// isNoRows covers pgx.ErrNoRows and the 22P02 invalid-text-representation
// error a malformed id raises against typed key columns; both mean no
// matching row.
func isNoRows(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
