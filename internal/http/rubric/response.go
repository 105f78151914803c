package rubric

import (
	"time"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/rubric"
)

type rubricResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Budget      int64      `json:"budget"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toResponse(r *rubric.Rubric) rubricResponse {
	return rubricResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Budget:      r.Budget,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type activityResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	PlannedBudget  int64           `json:"planned_budget"`
	ConsumedBudget int64           `json:"consumed_budget"`
	Status         activity.Status `json:"status"`
	MissionID      uuid.UUID       `json:"mission_id"`
}

func toActivityResponses(activities []*activity.Activity) []activityResponse {
	resp := make([]activityResponse, len(activities))
	for i, a := range activities {
		resp[i] = activityResponse{
			ID:             a.ID,
			Title:          a.Title,
			PlannedBudget:  a.PlannedBudget,
			ConsumedBudget: a.ConsumedBudget,
			Status:         a.Status,
			MissionID:      a.MissionID,
		}
	}

	return resp
}

type summaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Planned       int64     `json:"planned"`
	Committed     int64     `json:"committed"`
	Disbursed     int64     `json:"disbursed"`
	Remaining     int64     `json:"remaining"`
	Progression   float64   `json:"progression"`
	ActivityCount int       `json:"activity_count"`
}

func toSummaryResponse(s budget.RubricSummary) summaryResponse {
	return summaryResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Planned:       s.Planned,
		Committed:     s.Committed,
		Disbursed:     s.Disbursed,
		Remaining:     s.Remaining,
		Progression:   s.Progression,
		ActivityCount: s.ActivityCount,
	}
}
