package budget_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/mission"
)

func TestStatusDistribution(t *testing.T) {
	statuses := []mission.ValidationStatus{
		mission.StatusValidated,
		mission.StatusValidated,
		mission.StatusPending,
		mission.StatusRejected,
	}

	dist := budget.StatusDistribution(statuses)
	require.Len(t, dist, 3)

	assert.Equal(t, 2, dist[mission.StatusValidated].Count)
	assert.InDelta(t, 50.0, dist[mission.StatusValidated].Percentage, 0.0001)
	assert.Equal(t, 1, dist[mission.StatusPending].Count)
	assert.InDelta(t, 25.0, dist[mission.StatusPending].Percentage, 0.0001)
}

func TestStatusDistribution_Empty(t *testing.T) {
	dist := budget.StatusDistribution([]mission.ValidationStatus{})

	assert.NotNil(t, dist)
	assert.Empty(t, dist)
}

func TestRankRubrics(t *testing.T) {
	rollups := []budget.RubricSummary{
		{Name: "A", Committed: 100, ActivityCount: 5},
		{Name: "B", Committed: 300, ActivityCount: 1},
		{Name: "C", Committed: 200, ActivityCount: 5},
	}

	top := budget.RankRubrics(rollups, 2, budget.RankByCommitted)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Name)
	assert.Equal(t, "C", top[1].Name)

	// Stable: A and C tie on activity count and keep input order.
	byCount := budget.RankRubrics(rollups, 3, budget.RankByActivityCount)
	assert.Equal(t, "A", byCount[0].Name)
	assert.Equal(t, "C", byCount[1].Name)
	assert.Equal(t, "B", byCount[2].Name)
}

func TestRankRubrics_Idempotent(t *testing.T) {
	rollups := []budget.RubricSummary{
		{Name: "A", Committed: 100},
		{Name: "B", Committed: 100},
		{Name: "C", Committed: 100},
	}

	first := budget.RankRubrics(rollups, 3, budget.RankByCommitted)
	second := budget.RankRubrics(rollups, 3, budget.RankByCommitted)

	assert.Equal(t, first, second)
	// The input slice is left untouched.
	assert.Equal(t, "A", rollups[0].Name)
}

func TestRankMissionsByCost(t *testing.T) {
	m1 := &mission.Mission{ID: uuid.New(), Missionnaire: "Sidi", RatePerDay: 1000, DayCount: 2}
	m2 := &mission.Mission{ID: uuid.New(), Missionnaire: "Fatima", RatePerDay: 5000, DayCount: 3}

	expenses := map[uuid.UUID][]*expense.Expense{
		m1.ID: {{Amount: 10000}},
	}

	costs := budget.RankMissionsByCost([]*mission.Mission{m1, m2}, expenses, 2)
	require.Len(t, costs, 2)

	// m2: 15000 fee, no expenses. m1: 2000 fee + 10000 expenses.
	assert.Equal(t, m2.ID, costs[0].Mission.ID)
	assert.Equal(t, int64(15000), costs[0].Total)
	assert.Equal(t, m1.ID, costs[1].Mission.ID)
	assert.Equal(t, int64(12000), costs[1].Total)
	assert.Equal(t, int64(10000), costs[1].ExpenseTotal)
}
