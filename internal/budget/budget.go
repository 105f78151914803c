// Package budget reduces raw entity collections into the hierarchical
// summaries the dashboards are built from. Every function here is pure:
// no I/O, no clock reads, no hidden state. Callers pre-scope the inputs
// (e.g. "the activities of rubric X"); nothing in this package filters
// by foreign key.
package budget

import (
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
	"github.com/cfed-mr/backoffice/internal/mission"
	"github.com/cfed-mr/backoffice/internal/rubric"
)

// RubricSummary is the rollup of one rubric and its activities.
//
// Committed is the sum of the activities' planned budgets, the amount the
// envelope is engaged for, which is what drives Progression and the global
// totals. Disbursed is the sum of the activities' consumed budgets and is
// reported alongside, never mixed into Committed.
type RubricSummary struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Planned       int64
	Committed     int64
	Disbursed     int64
	Remaining     int64 // Planned - Committed, negative on overrun
	Progression   float64
	ActivityCount int
}

// RubricRollup reduces a rubric and its activities into a summary.
// Progression is clamped to [0,100]: an overspent envelope still renders a
// full progress bar while the overrun stays visible in Remaining.
func RubricRollup(r rubric.Rubric, activities []*activity.Activity) RubricSummary {
	var committed, disbursed int64

	for _, a := range activities {
		committed += a.PlannedBudget
		disbursed += a.ConsumedBudget
	}

	planned := r.Budget

	var progression float64
	if planned > 0 {
		progression = float64(committed) / float64(planned) * 100
		if progression > 100 {
			progression = 100
		}

		if progression < 0 {
			progression = 0
		}
	}

	return RubricSummary{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Planned:       planned,
		Committed:     committed,
		Disbursed:     disbursed,
		Remaining:     planned - committed,
		Progression:   progression,
		ActivityCount: len(activities),
	}
}

// GlobalStats are the totals over every rubric rollup.
type GlobalStats struct {
	TotalBudget    int64
	TotalCommitted int64
	TotalDisbursed int64
	Remaining      int64
	// ConsumptionRate is deliberately NOT clamped: a global overrun must
	// read as >100%, unlike the per-rubric progress bar.
	ConsumptionRate float64
	RubricCount     int
}

// GlobalStatistics sums per-rubric rollups into global totals. Each
// summary's Planned carries its rubric's budget, so the rollups alone are
// enough input.
func GlobalStatistics(rollups []RubricSummary) GlobalStats {
	var stats GlobalStats

	stats.RubricCount = len(rollups)

	for _, r := range rollups {
		stats.TotalBudget += r.Planned
		stats.TotalCommitted += r.Committed
		stats.TotalDisbursed += r.Disbursed
	}

	stats.Remaining = stats.TotalBudget - stats.TotalCommitted

	if stats.TotalBudget > 0 {
		stats.ConsumptionRate = float64(stats.TotalCommitted) / float64(stats.TotalBudget) * 100
	}

	return stats
}

// MissionTotal recomputes a mission's cost from its two factors. The total
// is never stored, so it cannot drift from RatePerDay and DayCount.
func MissionTotal(m mission.Mission) int64 {
	return m.RatePerDay * int64(m.DayCount)
}
