package mission

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=mission
type Repository interface {
	CreateMission(ctx context.Context, m *Mission) error
	GetMission(ctx context.Context, id uuid.UUID) (*Mission, error)
	ListMissions(ctx context.Context, filter ListFilter) ([]*Mission, error)
	UpdateMission(ctx context.Context, m *Mission) error
	UpdateValidationStatus(ctx context.Context, id uuid.UUID, status ValidationStatus) error

	// DeleteMission removes the mission together with its activities and
	// expenses (cascade at the schema level).
	DeleteMission(ctx context.Context, id uuid.UUID) error

	CountByValidationStatus(ctx context.Context) (map[ValidationStatus]int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Missionnaire string
	Reference    string
	DateStart    time.Time
	DateEnd      time.Time
	RatePerDay   int64
	DayCount     int
	PaymentMode  PaymentMode
}

type ListFilter struct {
	ValidationStatus *ValidationStatus
	StartDate        *time.Time
	EndDate          *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Mission, error) {
	m := &Mission{
		Missionnaire:     params.Missionnaire,
		Reference:        params.Reference,
		DateStart:        params.DateStart,
		DateEnd:          params.DateEnd,
		RatePerDay:       params.RatePerDay,
		DayCount:         params.DayCount,
		PaymentMode:      params.PaymentMode,
		ValidationStatus: StatusPending,
	}
	if err := s.repo.CreateMission(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Mission, error) {
	return s.repo.GetMission(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Mission, error) {
	return s.repo.ListMissions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, m *Mission) error {
	return s.repo.UpdateMission(ctx, m)
}

func (s *Service) UpdateValidationStatus(ctx context.Context, id uuid.UUID, status ValidationStatus) error {
	return s.repo.UpdateValidationStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMission(ctx, id)
}

func (s *Service) CountByValidationStatus(ctx context.Context) (map[ValidationStatus]int, error) {
	return s.repo.CountByValidationStatus(ctx)
}
