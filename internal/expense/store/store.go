package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/expense"
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

const selectExpenseColumns = `
	e.id, e.name, e.date, e.amount, e.receipt_ref, e.mission_id,
	e.created_at, e.updated_at
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	if err := s.Scan(
		&e.ID, &e.Name, &e.Date, &e.Amount, &e.ReceiptRef, &e.MissionID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (name, date, amount, receipt_ref, mission_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.Date,
		e.Amount,
		e.ReceiptRef,
		e.MissionID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses e WHERE e.id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses e WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.MissionID != nil {
		query += fmt.Sprintf(" AND e.mission_id = $%d", argIdx)

		args = append(args, *filter.MissionID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND e.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND e.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY e.date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (s *Store) ListExpensesByMission(ctx context.Context, missionID uuid.UUID) ([]*expense.Expense, error) {
	return s.ListExpenses(ctx, expense.ListFilter{MissionID: &missionID})
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET name = $1, date = $2, amount = $3, receipt_ref = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query, e.Name, e.Date, e.Amount, e.ReceiptRef, e.ID)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func importLockKey(missionID uuid.UUID, minDate, maxDate time.Time) int64 {
	h := fnv.New64a()
	h.Write(missionID[:])
	h.Write([]byte(minDate.Format("2006-01-02")))
	h.Write([]byte{0})
	h.Write([]byte(maxDate.Format("2006-01-02")))

	return int64(h.Sum64())
}

type importTx struct {
	tx        *sql.Tx
	missionID uuid.UUID
	minDate   time.Time
	maxDate   time.Time
}

func (s *Store) BeginImport(ctx context.Context, missionID uuid.UUID, minDate, maxDate time.Time) (expense.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	lockKey := importLockKey(missionID, minDate, maxDate)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx, missionID: missionID, minDate: minDate, maxDate: maxDate}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindDuplicates(ctx context.Context, params []expense.CreateParams) ([]*expense.Expense, error) {
	if len(params) == 0 {
		return nil, nil
	}

	type lookupKey struct {
		Date   string
		Amount int64
		Name   string
	}

	keySet := make(map[lookupKey]struct{}, len(params))

	for _, p := range params {
		keySet[lookupKey{
			Date:   p.Date.Format("2006-01-02"),
			Amount: p.Amount,
			Name:   p.Name,
		}] = struct{}{}
	}

	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		WHERE e.mission_id = $1 AND e.date >= $2 AND e.date <= $3
		ORDER BY e.date ASC`

	rows, err := itx.tx.QueryContext(ctx, query, itx.missionID, itx.minDate, itx.maxDate)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer rows.Close()

	var duplicates []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		k := lookupKey{
			Date:   e.Date.Format("2006-01-02"),
			Amount: e.Amount,
			Name:   e.Name,
		}

		_, found := keySet[k]
		if !found {
			continue
		}

		duplicates = append(duplicates, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duplicate rows: %w", err)
	}

	return duplicates, nil
}

func (itx *importTx) CreateExpenses(ctx context.Context, expenses []*expense.Expense) error {
	query := `
		INSERT INTO expenses (name, date, amount, receipt_ref, mission_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, e := range expenses {
		err := itx.tx.QueryRowContext(ctx, query,
			e.Name,
			e.Date,
			e.Amount,
			e.ReceiptRef,
			e.MissionID,
		).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating expense: %w", err)
		}
	}

	return nil
}
