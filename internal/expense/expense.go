package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("expense not found")

	// ErrReceiptRequired is returned when an expense has no justificatif.
	ErrReceiptRequired = errors.New("expense requires a receipt reference")

	ErrMissingMission = errors.New("expense requires a mission")
)

// Expense is a dated, receipted disbursement tied to a mission.
type Expense struct {
	ID         uuid.UUID
	Name       string
	Date       time.Time
	Amount     int64 // Amount in MRU
	ReceiptRef string
	MissionID  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
