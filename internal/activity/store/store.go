package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
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

const selectActivityColumns = `
	a.id, a.title, a.description, a.planned_budget, a.consumed_budget,
	a.status, a.rubric_id, a.mission_id, a.created_at, a.updated_at
`

func scanActivity(s scanner) (*activity.Activity, error) {
	var a activity.Activity

	var statusStr string

	if err := s.Scan(
		&a.ID, &a.Title, &a.Description, &a.PlannedBudget, &a.ConsumedBudget,
		&statusStr, &a.RubricID, &a.MissionID, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Status = activity.Status(statusStr)

	return &a, nil
}

func (s *Store) CreateActivity(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (title, description, planned_budget, consumed_budget, status, rubric_id, mission_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Title,
		a.Description,
		a.PlannedBudget,
		a.ConsumedBudget,
		a.Status,
		a.RubricID,
		a.MissionID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating activity: %w", err)
	}

	return nil
}

func (s *Store) GetActivity(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	query := `SELECT ` + selectActivityColumns + ` FROM activities a WHERE a.id = $1`

	a, err := scanActivity(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, activity.ErrNotFound
		}

		return nil, fmt.Errorf("getting activity: %w", err)
	}

	return a, nil
}

func (s *Store) listWhere(ctx context.Context, where string, args ...any) ([]*activity.Activity, error) {
	query := `SELECT ` + selectActivityColumns + ` FROM activities a ` + where + ` ORDER BY a.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*activity.Activity

	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func (s *Store) ListActivities(ctx context.Context) ([]*activity.Activity, error) {
	return s.listWhere(ctx, "")
}

func (s *Store) ListActivitiesByRubric(ctx context.Context, rubricID uuid.UUID) ([]*activity.Activity, error) {
	return s.listWhere(ctx, "WHERE a.rubric_id = $1", rubricID)
}

func (s *Store) ListActivitiesByMission(ctx context.Context, missionID uuid.UUID) ([]*activity.Activity, error) {
	return s.listWhere(ctx, "WHERE a.mission_id = $1", missionID)
}

func (s *Store) UpdateActivity(ctx context.Context, a *activity.Activity) error {
	query := `
		UPDATE activities
		SET title = $1, description = $2, planned_budget = $3, consumed_budget = $4,
		    status = $5, rubric_id = $6, mission_id = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		a.Title,
		a.Description,
		a.PlannedBudget,
		a.ConsumedBudget,
		a.Status,
		a.RubricID,
		a.MissionID,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status activity.Status) error {
	query := `
		UPDATE activities
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating activity status: %w", err)
	}

	return nil
}

func (s *Store) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return activity.ErrNotFound
	}

	return nil
}

func (s *Store) CountByStatus(ctx context.Context) (map[activity.Status]int, error) {
	query := `SELECT status, COUNT(*) FROM activities GROUP BY status`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting activities by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[activity.Status]int)

	for rows.Next() {
		var status string

		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}

		counts[activity.Status(status)] = count
	}

	return counts, rows.Err()
}

func (s *Store) CountByRubric(ctx context.Context) (map[uuid.UUID]int, error) {
	query := `SELECT rubric_id, COUNT(*) FROM activities GROUP BY rubric_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting activities by rubric: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)

	for rows.Next() {
		var rubricID uuid.UUID

		var count int

		if err := rows.Scan(&rubricID, &count); err != nil {
			return nil, fmt.Errorf("scanning rubric count: %w", err)
		}

		counts[rubricID] = count
	}

	return counts, rows.Err()
}
