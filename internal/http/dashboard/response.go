package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/dashboard"
)

type overviewResponse struct {
	Stats          statsResponse              `json:"stats"`
	Rubrics        []rubricSummaryResponse    `json:"rubrics"`
	TopRubrics     []rubricSummaryResponse    `json:"top_rubrics"`
	TopMissions    []missionCostResponse      `json:"top_missions"`
	Trend          []monthBucketResponse      `json:"trend"`
	MissionStatus  map[string]shareResponse   `json:"mission_status"`
	ActivityStatus map[string]shareResponse   `json:"activity_status"`
}

type statsResponse struct {
	TotalBudget     int64   `json:"total_budget"`
	TotalCommitted  int64   `json:"total_committed"`
	TotalDisbursed  int64   `json:"total_disbursed"`
	Remaining       int64   `json:"remaining"`
	ConsumptionRate float64 `json:"consumption_rate"`
	RubricCount     int     `json:"rubric_count"`
}

type rubricSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Planned       int64     `json:"planned"`
	Committed     int64     `json:"committed"`
	Disbursed     int64     `json:"disbursed"`
	Remaining     int64     `json:"remaining"`
	Progression   float64   `json:"progression"`
	ActivityCount int       `json:"activity_count"`
}

type missionCostResponse struct {
	ID           uuid.UUID `json:"id"`
	Missionnaire string    `json:"missionnaire"`
	DateStart    time.Time `json:"date_start"`
	DateEnd      time.Time `json:"date_end"`
	Fee          int64     `json:"fee"`
	ExpenseTotal int64     `json:"expense_total"`
	Total        int64     `json:"total"`
}

type monthBucketResponse struct {
	Month     string  `json:"month"`
	Total     int64   `json:"total"`
	Count     int     `json:"count"`
	Evolution float64 `json:"evolution"`
}

type shareResponse struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func toOverviewResponse(ov *dashboard.Overview) overviewResponse {
	resp := overviewResponse{
		Stats: statsResponse{
			TotalBudget:     ov.Stats.TotalBudget,
			TotalCommitted:  ov.Stats.TotalCommitted,
			TotalDisbursed:  ov.Stats.TotalDisbursed,
			Remaining:       ov.Stats.Remaining,
			ConsumptionRate: ov.Stats.ConsumptionRate,
			RubricCount:     ov.Stats.RubricCount,
		},
		Rubrics:        toSummaries(ov.Rubrics),
		TopRubrics:     toSummaries(ov.TopRubrics),
		TopMissions:    make([]missionCostResponse, len(ov.TopMissions)),
		Trend:          make([]monthBucketResponse, len(ov.Trend)),
		MissionStatus:  make(map[string]shareResponse, len(ov.MissionStatus)),
		ActivityStatus: make(map[string]shareResponse, len(ov.ActivityStatus)),
	}

	for i, mc := range ov.TopMissions {
		resp.TopMissions[i] = missionCostResponse{
			ID:           mc.Mission.ID,
			Missionnaire: mc.Mission.Missionnaire,
			DateStart:    mc.Mission.DateStart,
			DateEnd:      mc.Mission.DateEnd,
			Fee:          mc.Fee,
			ExpenseTotal: mc.ExpenseTotal,
			Total:        mc.Total,
		}
	}

	for i, b := range ov.Trend {
		resp.Trend[i] = monthBucketResponse{
			Month:     b.Month,
			Total:     b.Total,
			Count:     b.Count,
			Evolution: b.Evolution,
		}
	}

	for status, share := range ov.MissionStatus {
		resp.MissionStatus[string(status)] = shareResponse{Count: share.Count, Percentage: share.Percentage}
	}

	for status, share := range ov.ActivityStatus {
		resp.ActivityStatus[string(status)] = shareResponse{Count: share.Count, Percentage: share.Percentage}
	}

	return resp
}

func toSummaries(summaries []budget.RubricSummary) []rubricSummaryResponse {
	resp := make([]rubricSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = rubricSummaryResponse{
			ID:            s.ID,
			Name:          s.Name,
			Planned:       s.Planned,
			Committed:     s.Committed,
			Disbursed:     s.Disbursed,
			Remaining:     s.Remaining,
			Progression:   s.Progression,
			ActivityCount: s.ActivityCount,
		}
	}

	return resp
}

type countsResponse struct {
	MissionsByStatus   map[string]int    `json:"missions_by_status"`
	ActivitiesByStatus map[string]int    `json:"activities_by_status"`
	ActivitiesByRubric map[uuid.UUID]int `json:"activities_by_rubric"`
}

func toCountsResponse(c *dashboard.Counts) countsResponse {
	resp := countsResponse{
		MissionsByStatus:   make(map[string]int, len(c.MissionsByStatus)),
		ActivitiesByStatus: make(map[string]int, len(c.ActivitiesByStatus)),
		ActivitiesByRubric: c.ActivitiesByRubric,
	}

	for status, n := range c.MissionsByStatus {
		resp.MissionsByStatus[string(status)] = n
	}

	for status, n := range c.ActivitiesByStatus {
		resp.ActivitiesByStatus[string(status)] = n
	}

	return resp
}
