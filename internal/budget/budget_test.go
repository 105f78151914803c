package budget_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cfed-mr/backoffice/internal/activity"
	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/mission"
	"github.com/cfed-mr/backoffice/internal/rubric"
)

func act(planned, consumed int64) *activity.Activity {
	return &activity.Activity{
		ID:             uuid.New(),
		PlannedBudget:  planned,
		ConsumedBudget: consumed,
	}
}

func TestRubricRollup(t *testing.T) {
	type testCase struct {
		name            string
		budget          int64
		activities      []*activity.Activity
		wantCommitted   int64
		wantRemaining   int64
		wantProgression float64
	}

	tests := []testCase{
		{
			name:            "NoActivities",
			budget:          5000,
			activities:      nil,
			wantCommitted:   0,
			wantRemaining:   5000,
			wantProgression: 0,
		},
		{
			name:            "HalfCommitted",
			budget:          1000,
			activities:      []*activity.Activity{act(300, 100), act(200, 0)},
			wantCommitted:   500,
			wantRemaining:   500,
			wantProgression: 50,
		},
		{
			name:            "OverrunClampsProgression",
			budget:          1000,
			activities:      []*activity.Activity{act(300, 0), act(900, 0)},
			wantCommitted:   1200,
			wantRemaining:   -200,
			wantProgression: 100,
		},
		{
			name:            "UndefinedBudget",
			budget:          0,
			activities:      []*activity.Activity{act(300, 0)},
			wantCommitted:   300,
			wantRemaining:   -300,
			wantProgression: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rubric.Rubric{ID: uuid.New(), Name: "Formation", Budget: tt.budget}

			got := budget.RubricRollup(r, tt.activities)

			assert.Equal(t, tt.wantCommitted, got.Committed)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
			assert.InDelta(t, tt.wantProgression, got.Progression, 0.0001)
			assert.Equal(t, len(tt.activities), got.ActivityCount)
			assert.GreaterOrEqual(t, got.Progression, 0.0)
			assert.LessOrEqual(t, got.Progression, 100.0)
		})
	}
}

func TestRubricRollup_DisbursedSeparateFromCommitted(t *testing.T) {
	r := rubric.Rubric{ID: uuid.New(), Budget: 1000}

	got := budget.RubricRollup(r, []*activity.Activity{act(400, 250), act(100, 100)})

	assert.Equal(t, int64(500), got.Committed)
	assert.Equal(t, int64(350), got.Disbursed)
	// Remaining is driven by committed, not disbursed.
	assert.Equal(t, int64(500), got.Remaining)
}

func TestGlobalStatistics_NotClamped(t *testing.T) {
	rollups := []budget.RubricSummary{
		{Planned: 100, Committed: 150},
	}

	got := budget.GlobalStatistics(rollups)

	assert.Equal(t, int64(100), got.TotalBudget)
	assert.Equal(t, int64(150), got.TotalCommitted)
	assert.Equal(t, int64(-50), got.Remaining)
	assert.InDelta(t, 150.0, got.ConsumptionRate, 0.0001)
}

func TestGlobalStatistics_ZeroBudget(t *testing.T) {
	got := budget.GlobalStatistics([]budget.RubricSummary{{Planned: 0, Committed: 500}})

	assert.Equal(t, 0.0, got.ConsumptionRate)
}

// The per-rubric progression clamps while the global rate built from the
// same numbers does not.
func TestClampAsymmetry(t *testing.T) {
	r := rubric.Rubric{ID: uuid.New(), Budget: 1000}
	activities := []*activity.Activity{act(300, 0), act(900, 0)}

	rollup := budget.RubricRollup(r, activities)
	stats := budget.GlobalStatistics([]budget.RubricSummary{rollup})

	assert.InDelta(t, 100.0, rollup.Progression, 0.0001)
	assert.InDelta(t, 120.0, stats.ConsumptionRate, 0.0001)
}

func TestMissionTotal(t *testing.T) {
	m := mission.Mission{RatePerDay: 5000, DayCount: 3}

	assert.Equal(t, int64(15000), budget.MissionTotal(m))
	// Pure: re-evaluation yields the same result.
	assert.Equal(t, budget.MissionTotal(m), budget.MissionTotal(m))

	// No caching: a changed factor changes the next computation.
	m.DayCount = 4
	assert.Equal(t, int64(20000), budget.MissionTotal(m))
}
