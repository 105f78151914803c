package document

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("document not found")

// Document is administrative metadata attached to a rubric and optionally
// to a mission or an activity. The file itself lives elsewhere; FileRef is
// an opaque pointer into that external storage.
type Document struct {
	ID         uuid.UUID
	Title      string
	FileRef    string
	RubricID   uuid.UUID
	MissionID  *uuid.UUID
	ActivityID *uuid.UUID
	CreatedAt  time.Time
}
