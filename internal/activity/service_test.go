package activity_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfed-mr/backoffice/internal/activity"
)

type fakeRepo struct {
	activity.Repository

	created []*activity.Activity
}

func (f *fakeRepo) CreateActivity(_ context.Context, a *activity.Activity) error {
	a.ID = uuid.New()
	f.created = append(f.created, a)

	return nil
}

func TestService_Create(t *testing.T) {
	rubricID := uuid.New()
	missionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := activity.NewService(repo)

		a, err := svc.Create(context.Background(), activity.CreateParams{
			Title:         "Atelier de formation",
			PlannedBudget: 80000,
			RubricID:      rubricID,
			MissionID:     missionID,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, activity.StatusPlanned, a.Status)
	})

	t.Run("ExplicitStatus", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := activity.NewService(repo)

		a, err := svc.Create(context.Background(), activity.CreateParams{
			Title:     "Suivi terrain",
			Status:    activity.StatusInProgress,
			RubricID:  rubricID,
			MissionID: missionID,
		})
		require.NoError(t, err)
		assert.Equal(t, activity.StatusInProgress, a.Status)
	})

	t.Run("MissingRubric", func(t *testing.T) {
		svc := activity.NewService(&fakeRepo{})

		_, err := svc.Create(context.Background(), activity.CreateParams{
			Title:     "Sans rubrique",
			MissionID: missionID,
		})
		require.ErrorIs(t, err, activity.ErrMissingParent)
	})

	t.Run("MissingMission", func(t *testing.T) {
		svc := activity.NewService(&fakeRepo{})

		_, err := svc.Create(context.Background(), activity.CreateParams{
			Title:    "Sans mission",
			RubricID: rubricID,
		})
		require.ErrorIs(t, err, activity.ErrMissingParent)
	})
}
