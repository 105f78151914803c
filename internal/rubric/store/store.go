package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/rubric"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectRubricColumns = `r.id, r.name, r.description, r.budget, r.created_at, r.updated_at`

func scanRubric(s scanner) (*rubric.Rubric, error) {
	var r rubric.Rubric

	if err := s.Scan(&r.ID, &r.Name, &r.Description, &r.Budget, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Store) CreateRubric(ctx context.Context, r *rubric.Rubric) error {
	query := `
		INSERT INTO rubrics (name, description, budget, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, r.Name, r.Description, r.Budget).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating rubric: %w", err)
	}

	return nil
}

func (s *Store) GetRubric(ctx context.Context, id uuid.UUID) (*rubric.Rubric, error) {
	query := `SELECT ` + selectRubricColumns + ` FROM rubrics r WHERE r.id = $1`

	r, err := scanRubric(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, rubric.ErrNotFound
		}

		return nil, fmt.Errorf("getting rubric: %w", err)
	}

	return r, nil
}

func (s *Store) ListRubrics(ctx context.Context) ([]*rubric.Rubric, error) {
	query := `SELECT ` + selectRubricColumns + ` FROM rubrics r ORDER BY r.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rubrics: %w", err)
	}
	defer rows.Close()

	var rubrics []*rubric.Rubric

	for rows.Next() {
		r, err := scanRubric(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rubric: %w", err)
		}

		rubrics = append(rubrics, r)
	}

	return rubrics, rows.Err()
}

func (s *Store) UpdateRubric(ctx context.Context, r *rubric.Rubric) error {
	query := `
		UPDATE rubrics
		SET name = $1, description = $2, budget = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, r.Name, r.Description, r.Budget, r.ID)
	if err != nil {
		return fmt.Errorf("updating rubric: %w", err)
	}

	return nil
}

// DeleteRubric removes the rubric unless documents are still attached to it.
// The guard and the delete run in one transaction so a concurrent attach
// cannot slip between the check and the delete.
func (s *Store) DeleteRubric(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var docCount int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE rubric_id = $1`, id,
	).Scan(&docCount); err != nil {
		return fmt.Errorf("counting documents: %w", err)
	}

	if docCount > 0 {
		return rubric.ErrHasDocuments
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM rubrics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting rubric: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return rubric.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
