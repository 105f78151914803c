package rubric

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=rubric
type Repository interface {
	CreateRubric(ctx context.Context, r *Rubric) error
	GetRubric(ctx context.Context, id uuid.UUID) (*Rubric, error)
	ListRubrics(ctx context.Context) ([]*Rubric, error)
	UpdateRubric(ctx context.Context, r *Rubric) error

	// DeleteRubric fails with ErrHasDocuments while the rubric owns documents.
	DeleteRubric(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
	Budget      int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Rubric, error) {
	r := &Rubric{
		Name:        params.Name,
		Description: params.Description,
		Budget:      params.Budget,
	}
	if err := s.repo.CreateRubric(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Rubric, error) {
	return s.repo.GetRubric(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Rubric, error) {
	return s.repo.ListRubrics(ctx)
}

func (s *Service) Update(ctx context.Context, r *Rubric) error {
	return s.repo.UpdateRubric(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRubric(ctx, id)
}
