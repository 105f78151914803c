package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
)

type activityResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	PlannedBudget  int64           `json:"planned_budget"`
	ConsumedBudget int64           `json:"consumed_budget"`
	Status         activity.Status `json:"status"`
	RubricID       uuid.UUID       `json:"rubric_id"`
	MissionID      uuid.UUID       `json:"mission_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(a *activity.Activity) activityResponse {
	return activityResponse{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		PlannedBudget:  a.PlannedBudget,
		ConsumedBudget: a.ConsumedBudget,
		Status:         a.Status,
		RubricID:       a.RubricID,
		MissionID:      a.MissionID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toResponses(activities []*activity.Activity) []activityResponse {
	resp := make([]activityResponse, len(activities))
	for i, a := range activities {
		resp[i] = toResponse(a)
	}

	return resp
}
