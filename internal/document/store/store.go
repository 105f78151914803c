package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/document"
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

const selectDocumentColumns = `d.id, d.title, d.file_ref, d.rubric_id, d.mission_id, d.activity_id, d.created_at`

func scanDocument(s scanner) (*document.Document, error) {
	var d document.Document

	if err := s.Scan(&d.ID, &d.Title, &d.FileRef, &d.RubricID, &d.MissionID, &d.ActivityID, &d.CreatedAt); err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *Store) CreateDocument(ctx context.Context, d *document.Document) error {
	query := `
		INSERT INTO documents (title, file_ref, rubric_id, mission_id, activity_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Title,
		d.FileRef,
		d.RubricID,
		d.MissionID,
		d.ActivityID,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating document: %w", err)
	}

	return nil
}

func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	query := `SELECT ` + selectDocumentColumns + ` FROM documents d WHERE d.id = $1`

	d, err := scanDocument(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	return d, nil
}

func (s *Store) ListDocumentsByRubric(ctx context.Context, rubricID uuid.UUID) ([]*document.Document, error) {
	query := `SELECT ` + selectDocumentColumns + ` FROM documents d WHERE d.rubric_id = $1 ORDER BY d.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, rubricID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*document.Document

	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (s *Store) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return document.ErrNotFound
	}

	return nil
}
