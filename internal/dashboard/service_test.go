package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfed-mr/backoffice/internal/activity"
	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/dashboard"
	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/mission"
	"github.com/cfed-mr/backoffice/internal/rubric"
)

type fakeRubrics struct {
	rubrics []*rubric.Rubric
	err     error
}

func (f *fakeRubrics) List(ctx context.Context) ([]*rubric.Rubric, error) {
	return f.rubrics, f.err
}

type fakeActivities struct {
	activities []*activity.Activity
}

func (f *fakeActivities) List(ctx context.Context) ([]*activity.Activity, error) {
	return f.activities, nil
}

func (f *fakeActivities) CountByStatus(ctx context.Context) (map[activity.Status]int, error) {
	counts := make(map[activity.Status]int)
	for _, a := range f.activities {
		counts[a.Status]++
	}

	return counts, nil
}

func (f *fakeActivities) CountByRubric(ctx context.Context) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int)
	for _, a := range f.activities {
		counts[a.RubricID]++
	}

	return counts, nil
}

type fakeMissions struct {
	missions []*mission.Mission
}

func (f *fakeMissions) List(ctx context.Context, filter mission.ListFilter) ([]*mission.Mission, error) {
	return f.missions, nil
}

func (f *fakeMissions) CountByValidationStatus(ctx context.Context) (map[mission.ValidationStatus]int, error) {
	counts := make(map[mission.ValidationStatus]int)
	for _, m := range f.missions {
		counts[m.ValidationStatus]++
	}

	return counts, nil
}

type fakeExpenses struct {
	expenses []*expense.Expense
}

func (f *fakeExpenses) List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	return f.expenses, nil
}

func TestService_Overview(t *testing.T) {
	r1 := &rubric.Rubric{ID: uuid.New(), Name: "Formation", Budget: 1000}
	r2 := &rubric.Rubric{ID: uuid.New(), Name: "Equipement", Budget: 0}

	m1 := &mission.Mission{
		ID:               uuid.New(),
		Missionnaire:     "Sidi",
		RatePerDay:       5000,
		DayCount:         3,
		ValidationStatus: mission.StatusValidated,
	}

	activities := []*activity.Activity{
		{ID: uuid.New(), RubricID: r1.ID, MissionID: m1.ID, PlannedBudget: 300, ConsumedBudget: 100, Status: activity.StatusInProgress},
		{ID: uuid.New(), RubricID: r1.ID, MissionID: m1.ID, PlannedBudget: 900, Status: activity.StatusPlanned},
	}

	expenses := []*expense.Expense{
		{ID: uuid.New(), MissionID: m1.ID, Amount: 100, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ReceiptRef: "J-1"},
		{ID: uuid.New(), MissionID: m1.ID, Amount: 50, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), ReceiptRef: "J-2"},
	}

	svc := dashboard.NewService(
		&fakeRubrics{rubrics: []*rubric.Rubric{r1, r2}},
		&fakeActivities{activities: activities},
		&fakeMissions{missions: []*mission.Mission{m1}},
		&fakeExpenses{expenses: expenses},
	).WithClock(func() time.Time {
		return time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	})

	got, err := svc.Overview(context.Background(), 12, budget.SortAscending)
	require.NoError(t, err)

	// Rubric 1 is overcommitted: clamped bar, negative remaining.
	require.Len(t, got.Rubrics, 2)
	assert.Equal(t, int64(1200), got.Rubrics[0].Committed)
	assert.Equal(t, int64(-200), got.Rubrics[0].Remaining)
	assert.InDelta(t, 100.0, got.Rubrics[0].Progression, 0.0001)

	// Globally the overrun is visible unclamped.
	assert.Equal(t, int64(1000), got.Stats.TotalBudget)
	assert.InDelta(t, 120.0, got.Stats.ConsumptionRate, 0.0001)

	require.Len(t, got.Trend, 1)
	assert.Equal(t, "2024-01", got.Trend[0].Month)
	assert.Equal(t, int64(150), got.Trend[0].Total)
	assert.Equal(t, 2, got.Trend[0].Count)

	require.Len(t, got.TopMissions, 1)
	assert.Equal(t, int64(15150), got.TopMissions[0].Total)

	assert.Equal(t, 1, got.MissionStatus[mission.StatusValidated].Count)
	assert.InDelta(t, 50.0, got.ActivityStatus[activity.StatusPlanned].Percentage, 0.0001)
}

func TestService_Overview_SourceError(t *testing.T) {
	svc := dashboard.NewService(
		&fakeRubrics{err: errors.New("db down")},
		&fakeActivities{},
		&fakeMissions{},
		&fakeExpenses{},
	)

	got, err := svc.Overview(context.Background(), 12, budget.SortAscending)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Counts(t *testing.T) {
	rubricID := uuid.New()

	svc := dashboard.NewService(
		&fakeRubrics{},
		&fakeActivities{activities: []*activity.Activity{
			{RubricID: rubricID, Status: activity.StatusDone},
			{RubricID: rubricID, Status: activity.StatusDone},
		}},
		&fakeMissions{missions: []*mission.Mission{
			{ValidationStatus: mission.StatusPending},
		}},
		&fakeExpenses{},
	)

	got, err := svc.Counts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, got.MissionsByStatus[mission.StatusPending])
	assert.Equal(t, 2, got.ActivitiesByStatus[activity.StatusDone])
	assert.Equal(t, 2, got.ActivitiesByRubric[rubricID])
}
