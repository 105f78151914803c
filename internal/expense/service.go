package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	ListExpensesByMission(ctx context.Context, missionID uuid.UUID) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	BeginImport(ctx context.Context, missionID uuid.UUID, minDate, maxDate time.Time) (ImportTx, error)
}

// ImportTx scopes a statement import to one transaction so concurrent
// imports of the same statement cannot double-insert.
type ImportTx interface {
	FindDuplicates(ctx context.Context, params []CreateParams) ([]*Expense, error)
	CreateExpenses(ctx context.Context, expenses []*Expense) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name       string
	Date       time.Time
	Amount     int64
	ReceiptRef string
	MissionID  uuid.UUID
}

type ListFilter struct {
	MissionID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func validate(params CreateParams) error {
	if strings.TrimSpace(params.ReceiptRef) == "" {
		return ErrReceiptRequired
	}

	if params.MissionID == uuid.Nil {
		return ErrMissingMission
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	e := &Expense{
		Name:       params.Name,
		Date:       params.Date,
		Amount:     params.Amount,
		ReceiptRef: params.ReceiptRef,
		MissionID:  params.MissionID,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

func (s *Service) ListByMission(ctx context.Context, missionID uuid.UUID) ([]*Expense, error) {
	return s.repo.ListExpensesByMission(ctx, missionID)
}

func (s *Service) Update(ctx context.Context, e *Expense) error {
	if strings.TrimSpace(e.ReceiptRef) == "" {
		return ErrReceiptRequired
	}

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

type ImportResult struct {
	Imported  []*Expense
	New       []CreateParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Expense
}

// ImportBatch inserts a batch of parsed statement lines for one mission.
// If any line matches an existing expense on (date, amount, name) the whole
// batch is held back and returned as conflicts for the caller to resolve.
func (s *Service) ImportBatch(ctx context.Context, missionID uuid.UUID, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	for i := range params {
		params[i].MissionID = missionID
		if err := validate(params[i]); err != nil {
			return nil, err
		}
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, missionID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	type dupKey struct {
		Date   string
		Amount int64
		Name   string
	}

	lookup := make(map[dupKey]*Expense, len(duplicates))

	for _, d := range duplicates {
		k := dupKey{
			Date:   d.Date.Format(time.DateOnly),
			Amount: d.Amount,
			Name:   d.Name,
		}
		lookup[k] = d
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		k := dupKey{
			Date:   p.Date.Format(time.DateOnly),
			Amount: p.Amount,
			Name:   p.Name,
		}

		existing, found := lookup[k]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	expenses := paramsToExpenses(newParams)
	if err := itx.CreateExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("create expenses: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: expenses}, nil
}

// CreateBatch inserts the given lines unconditionally, for confirming an
// import after the caller has reviewed the conflicts.
func (s *Service) CreateBatch(ctx context.Context, missionID uuid.UUID, params []CreateParams) ([]*Expense, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i := range params {
		params[i].MissionID = missionID
		if err := validate(params[i]); err != nil {
			return nil, err
		}
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, missionID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	expenses := paramsToExpenses(params)
	if err := itx.CreateExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("create expenses: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return expenses, nil
}

func dateRange(params []CreateParams) (time.Time, time.Time) {
	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	return minDate, maxDate
}

func paramsToExpenses(params []CreateParams) []*Expense {
	expenses := make([]*Expense, len(params))
	for i, p := range params {
		expenses[i] = &Expense{
			Name:       p.Name,
			Date:       p.Date,
			Amount:     p.Amount,
			ReceiptRef: p.ReceiptRef,
			MissionID:  p.MissionID,
		}
	}

	return expenses
}
