package rubric_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cfed-mr/backoffice/internal/rubric"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params rubric.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *rubric.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: rubric.CreateParams{
					Name:        "Formation continue",
					Description: "Sessions de formation des agents",
					Budget:      500000,
				},
			},
			setupMock: func(m *rubric.MockRepository) {
				m.EXPECT().
					CreateRubric(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *rubric.Rubric) error {
						r.ID = uuid.New()
						r.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			args: args{
				params: rubric.CreateParams{
					Name: "Logistique",
				},
			},
			setupMock: func(m *rubric.MockRepository) {
				m.EXPECT().
					CreateRubric(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := rubric.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := rubric.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.args.params.Budget, got.Budget)
		})
	}
}

func TestService_Delete_WithDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rubric.NewMockRepository(ctrl)
	svc := rubric.NewService(repo)

	id := uuid.New()

	repo.EXPECT().DeleteRubric(gomock.Any(), id).Return(rubric.ErrHasDocuments)

	err := svc.Delete(context.Background(), id)
	require.ErrorIs(t, err, rubric.ErrHasDocuments)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rubric.NewMockRepository(ctrl)
	svc := rubric.NewService(repo)

	id := uuid.New()

	repo.EXPECT().DeleteRubric(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
}
