package mission

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("mission not found")

// ValidationStatus represents the approval state of a mission.
type ValidationStatus string

const (
	StatusPending   ValidationStatus = "en_attente"
	StatusValidated ValidationStatus = "validee"
	StatusRejected  ValidationStatus = "rejetee"
)

// PaymentMode is how the missionnaire gets paid.
type PaymentMode string

const (
	PaymentTransfer PaymentMode = "virement"
	PaymentCheque   PaymentMode = "cheque"
	PaymentCash     PaymentMode = "especes"
)

// Mission is a dated assignment with a per-day rate. Its total cost is
// always derived from RatePerDay and DayCount, never stored.
type Mission struct {
	ID               uuid.UUID
	Missionnaire     string
	Reference        string
	DateStart        time.Time
	DateEnd          time.Time
	RatePerDay       int64 // Amount in MRU
	DayCount         int
	PaymentMode      PaymentMode
	ValidationStatus ValidationStatus
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
