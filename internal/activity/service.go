package activity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrMissingParent is returned when an activity is created without both of
// its required foreign keys.
var ErrMissingParent = errors.New("activity requires a rubric and a mission")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=activity
type Repository interface {
	CreateActivity(ctx context.Context, a *Activity) error
	GetActivity(ctx context.Context, id uuid.UUID) (*Activity, error)
	ListActivitiesByRubric(ctx context.Context, rubricID uuid.UUID) ([]*Activity, error)
	ListActivitiesByMission(ctx context.Context, missionID uuid.UUID) ([]*Activity, error)
	ListActivities(ctx context.Context) ([]*Activity, error)
	UpdateActivity(ctx context.Context, a *Activity) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	CountByStatus(ctx context.Context) (map[Status]int, error)
	CountByRubric(ctx context.Context) (map[uuid.UUID]int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title          string
	Description    string
	PlannedBudget  int64
	ConsumedBudget int64
	Status         Status
	RubricID       uuid.UUID
	MissionID      uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Activity, error) {
	if params.RubricID == uuid.Nil || params.MissionID == uuid.Nil {
		return nil, ErrMissingParent
	}

	status := params.Status
	if status == "" {
		status = StatusPlanned
	}

	a := &Activity{
		Title:          params.Title,
		Description:    params.Description,
		PlannedBudget:  params.PlannedBudget,
		ConsumedBudget: params.ConsumedBudget,
		Status:         status,
		RubricID:       params.RubricID,
		MissionID:      params.MissionID,
	}
	if err := s.repo.CreateActivity(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Activity, error) {
	return s.repo.GetActivity(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Activity, error) {
	return s.repo.ListActivities(ctx)
}

func (s *Service) ListByRubric(ctx context.Context, rubricID uuid.UUID) ([]*Activity, error) {
	return s.repo.ListActivitiesByRubric(ctx, rubricID)
}

func (s *Service) ListByMission(ctx context.Context, missionID uuid.UUID) ([]*Activity, error) {
	return s.repo.ListActivitiesByMission(ctx, missionID)
}

func (s *Service) Update(ctx context.Context, a *Activity) error {
	return s.repo.UpdateActivity(ctx, a)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteActivity(ctx, id)
}

func (s *Service) CountByStatus(ctx context.Context) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx)
}

func (s *Service) CountByRubric(ctx context.Context) (map[uuid.UUID]int, error) {
	return s.repo.CountByRubric(ctx)
}
