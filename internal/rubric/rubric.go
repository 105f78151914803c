package rubric

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("rubric not found")

	// ErrHasDocuments is returned when deleting a rubric that still owns documents.
	ErrHasDocuments = errors.New("rubric has attached documents")
)

// Rubric is a named budget envelope. A Budget of 0 means "to be defined".
type Rubric struct {
	ID          uuid.UUID
	Name        string
	Description string
	Budget      int64 // Amount in MRU
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
