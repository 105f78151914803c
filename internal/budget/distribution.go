package budget

import (
	"sort"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/mission"
)

// StatusShare is one slice of a status distribution.
type StatusShare struct {
	Count      int
	Percentage float64
}

// StatusDistribution groups statuses and computes each group's share of the
// whole. An empty input yields an empty map, never a division fault.
func StatusDistribution[S ~string](statuses []S) map[S]StatusShare {
	dist := make(map[S]StatusShare, len(statuses))

	total := len(statuses)
	if total == 0 {
		return dist
	}

	for _, s := range statuses {
		share := dist[s]
		share.Count++
		dist[s] = share
	}

	for s, share := range dist {
		share.Percentage = float64(share.Count) / float64(total) * 100
		dist[s] = share
	}

	return dist
}

// RankKey selects the metric RankRubrics sorts by.
type RankKey int

const (
	RankByCommitted RankKey = iota
	RankByActivityCount
)

// RankRubrics returns the top n rollups by the chosen key, descending.
// The sort is stable so ties keep their input order.
func RankRubrics(rollups []RubricSummary, n int, key RankKey) []RubricSummary {
	ranked := make([]RubricSummary, len(rollups))
	copy(ranked, rollups)

	sort.SliceStable(ranked, func(i, j int) bool {
		switch key {
		case RankByActivityCount:
			return ranked[i].ActivityCount > ranked[j].ActivityCount
		default:
			return ranked[i].Committed > ranked[j].Committed
		}
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// MissionCost pairs a mission with its full cost: the derived fee
// (rate x days) plus the mission's recorded expenses.
type MissionCost struct {
	Mission      *mission.Mission
	Fee          int64
	ExpenseTotal int64
	Total        int64
}

// RankMissionsByCost returns the n most expensive missions, descending.
// expensesByMission maps a mission ID to its (pre-scoped) expenses.
func RankMissionsByCost(missions []*mission.Mission, expensesByMission map[uuid.UUID][]*expense.Expense, n int) []MissionCost {
	costs := make([]MissionCost, 0, len(missions))

	for _, m := range missions {
		var expenseTotal int64
		for _, e := range expensesByMission[m.ID] {
			expenseTotal += e.Amount
		}

		fee := MissionTotal(*m)

		costs = append(costs, MissionCost{
			Mission:      m,
			Fee:          fee,
			ExpenseTotal: expenseTotal,
			Total:        fee + expenseTotal,
		})
	}

	sort.SliceStable(costs, func(i, j int) bool {
		return costs[i].Total > costs[j].Total
	})

	if n >= 0 && n < len(costs) {
		costs = costs[:n]
	}

	return costs
}
