package document

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrMissingRubric = errors.New("document requires a rubric")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=document
type Repository interface {
	CreateDocument(ctx context.Context, d *Document) error
	GetDocument(ctx context.Context, id uuid.UUID) (*Document, error)
	ListDocumentsByRubric(ctx context.Context, rubricID uuid.UUID) ([]*Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title      string
	FileRef    string
	RubricID   uuid.UUID
	MissionID  *uuid.UUID
	ActivityID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Document, error) {
	if params.RubricID == uuid.Nil {
		return nil, ErrMissingRubric
	}

	d := &Document{
		Title:      params.Title,
		FileRef:    params.FileRef,
		RubricID:   params.RubricID,
		MissionID:  params.MissionID,
		ActivityID: params.ActivityID,
	}
	if err := s.repo.CreateDocument(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return s.repo.GetDocument(ctx, id)
}

func (s *Service) ListByRubric(ctx context.Context, rubricID uuid.UUID) ([]*Document, error) {
	return s.repo.ListDocumentsByRubric(ctx, rubricID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDocument(ctx, id)
}
