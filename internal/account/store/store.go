package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectUserColumns = `u.id, u.name, u.email, u.password_hash, u.role_id, u.created_at, u.updated_at`

func scanUser(s scanner) (*account.User, error) {
	var u account.User

	if err := s.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *account.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.RoleID).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*account.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users u WHERE u.id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrUserNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*account.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users u WHERE u.email = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrUserNotFound
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*account.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users u ORDER BY u.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*account.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Store) UpdateUser(ctx context.Context, u *account.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role_id = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.RoleID, u.ID)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return account.ErrUserNotFound
	}

	return nil
}

func (s *Store) CreateRole(ctx context.Context, r *account.Role) error {
	query := `INSERT INTO roles (name) VALUES ($1) RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, r.Name).Scan(&r.ID); err != nil {
		return fmt.Errorf("creating role: %w", err)
	}

	return nil
}

func (s *Store) ListRoles(ctx context.Context) ([]*account.Role, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	var roles []*account.Role

	for rows.Next() {
		var r account.Role

		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}

		roles = append(roles, &r)
	}

	return roles, rows.Err()
}

// DeleteRole removes the role unless users are still assigned. Check and
// delete share one transaction so a concurrent assignment cannot race the
// guard.
func (s *Store) DeleteRole(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var userCount int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role_id = $1`, id,
	).Scan(&userCount); err != nil {
		return fmt.Errorf("counting role users: %w", err)
	}

	if userCount > 0 {
		return account.ErrRoleInUse
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return account.ErrRoleNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
