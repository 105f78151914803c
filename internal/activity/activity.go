package activity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("activity not found")

// Status represents the lifecycle state of an activity.
type Status string

const (
	StatusPlanned    Status = "planifiee"
	StatusInProgress Status = "en_cours"
	StatusDone       Status = "terminee"
	StatusCancelled  Status = "annulee"
)

// Activity is a planned sub-effort charged against a rubric's envelope and
// carried out within a mission. Both foreign keys are required.
type Activity struct {
	ID             uuid.UUID
	Title          string
	Description    string
	PlannedBudget  int64 // Amount in MRU committed against the rubric
	ConsumedBudget int64 // Amount in MRU actually disbursed
	Status         Status
	RubricID       uuid.UUID
	MissionID      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
