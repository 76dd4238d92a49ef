package postgres

import (
	"context"
	"fmt"

	"github.com/viewlist/viewlist-api/internal/domain/entity"
	"github.com/viewlist/viewlist-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persists a new user. The unique index on email is the
// authoritative duplicate guard.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if derr := classify(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail fetches a user (hash included, for authentication).
// Returns (nil, nil) when absent.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// FindByID fetches a user by id. Returns (nil, nil) when absent.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

// UpdateName changes the user's name; zero affected rows means the name
// was already the stored value.
func (r *UserRepo) UpdateName(id, name string) (int64, error) {
	query := `
		UPDATE users SET name = $2, updated_at = now()
		WHERE id = $1 AND name IS DISTINCT FROM $2`
	cmd, err := r.q.Exec(context.Background(), query, id, name)
	if err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// UpdatePassword stores a new password hash.
func (r *UserRepo) UpdatePassword(id, passwordHash string) (int64, error) {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("update password: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete removes the row.
func (r *UserRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if derr := classify(err); derr != nil {
			return 0, derr
		}
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return cmd.RowsAffected(), nil
}
