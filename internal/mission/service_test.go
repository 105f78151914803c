package mission_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cfed-mr/backoffice/internal/mission"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params mission.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *mission.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: mission.CreateParams{
					Missionnaire: "Mohamed Ould Ahmed",
					Reference:    "ORD-2024-017",
					DateStart:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
					DateEnd:      time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
					RatePerDay:   5000,
					DayCount:     5,
					PaymentMode:  mission.PaymentTransfer,
				},
			},
			setupMock: func(m *mission.MockRepository) {
				m.EXPECT().
					CreateMission(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ms *mission.Mission) error {
						ms.ID = uuid.New()
						ms.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			args: args{
				params: mission.CreateParams{
					Missionnaire: "Fatimetou Mint Sidi",
				},
			},
			setupMock: func(m *mission.MockRepository) {
				m.EXPECT().
					CreateMission(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mission.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := mission.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, mission.StatusPending, got.ValidationStatus)
		})
	}
}

func TestService_UpdateValidationStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mission.NewMockRepository(ctrl)
	svc := mission.NewService(repo)

	id := uuid.New()

	repo.EXPECT().UpdateValidationStatus(gomock.Any(), id, mission.StatusValidated).Return(nil)

	require.NoError(t, svc.UpdateValidationStatus(context.Background(), id, mission.StatusValidated))
}

func TestService_List_Filtered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mission.NewMockRepository(ctrl)
	svc := mission.NewService(repo)

	filter := mission.ListFilter{ValidationStatus: new(mission.StatusPending)}

	repo.EXPECT().
		ListMissions(gomock.Any(), filter).
		Return([]*mission.Mission{{ID: uuid.New()}}, nil)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mission.NewMockRepository(ctrl)
	svc := mission.NewService(repo)

	id := uuid.New()

	repo.EXPECT().DeleteMission(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
}
