package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/mission"
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

const selectMissionColumns = `
	m.id, m.missionnaire, m.reference, m.date_start, m.date_end,
	m.rate_per_day, m.day_count, m.payment_mode, m.validation_status,
	m.created_at, m.updated_at
`

func scanMission(s scanner) (*mission.Mission, error) {
	var m mission.Mission

	var modeStr, statusStr string

	if err := s.Scan(
		&m.ID, &m.Missionnaire, &m.Reference, &m.DateStart, &m.DateEnd,
		&m.RatePerDay, &m.DayCount, &modeStr, &statusStr,
		&m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.PaymentMode = mission.PaymentMode(modeStr)
	m.ValidationStatus = mission.ValidationStatus(statusStr)

	return &m, nil
}

func (s *Store) CreateMission(ctx context.Context, m *mission.Mission) error {
	query := `
		INSERT INTO missions (missionnaire, reference, date_start, date_end, rate_per_day, day_count, payment_mode, validation_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.Missionnaire,
		m.Reference,
		m.DateStart,
		m.DateEnd,
		m.RatePerDay,
		m.DayCount,
		m.PaymentMode,
		m.ValidationStatus,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating mission: %w", err)
	}

	return nil
}

func (s *Store) GetMission(ctx context.Context, id uuid.UUID) (*mission.Mission, error) {
	query := `SELECT ` + selectMissionColumns + ` FROM missions m WHERE m.id = $1`

	m, err := scanMission(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, mission.ErrNotFound
		}

		return nil, fmt.Errorf("getting mission: %w", err)
	}

	return m, nil
}

func (s *Store) ListMissions(ctx context.Context, filter mission.ListFilter) ([]*mission.Mission, error) {
	query := `SELECT ` + selectMissionColumns + ` FROM missions m WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ValidationStatus != nil {
		query += fmt.Sprintf(" AND m.validation_status = $%d", argIdx)

		args = append(args, *filter.ValidationStatus)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND m.date_start >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND m.date_end <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY m.date_start DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing missions: %w", err)
	}
	defer rows.Close()

	var missions []*mission.Mission

	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning mission: %w", err)
		}

		missions = append(missions, m)
	}

	return missions, rows.Err()
}

func (s *Store) UpdateMission(ctx context.Context, m *mission.Mission) error {
	query := `
		UPDATE missions
		SET missionnaire = $1, reference = $2, date_start = $3, date_end = $4,
		    rate_per_day = $5, day_count = $6, payment_mode = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		m.Missionnaire,
		m.Reference,
		m.DateStart,
		m.DateEnd,
		m.RatePerDay,
		m.DayCount,
		m.PaymentMode,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating mission: %w", err)
	}

	return nil
}

func (s *Store) UpdateValidationStatus(ctx context.Context, id uuid.UUID, status mission.ValidationStatus) error {
	query := `
		UPDATE missions
		SET validation_status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating validation status: %w", err)
	}

	return nil
}

// DeleteMission relies on ON DELETE CASCADE to take the mission's
// activities and expenses with it.
func (s *Store) DeleteMission(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM missions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting mission: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return mission.ErrNotFound
	}

	return nil
}

func (s *Store) CountByValidationStatus(ctx context.Context) (map[mission.ValidationStatus]int, error) {
	query := `SELECT validation_status, COUNT(*) FROM missions GROUP BY validation_status`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting missions by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[mission.ValidationStatus]int)

	for rows.Next() {
		var status string

		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}

		counts[mission.ValidationStatus(status)] = count
	}

	return counts, rows.Err()
}
