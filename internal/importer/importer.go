package importer

import (
	"io"

	"github.com/cfed-mr/backoffice/internal/expense"
)

// Bank identifies a supported statement format.
type Bank string

const (
	BankBNM Bank = "bnm"
)

// Importer parses a bank statement into expense params. MissionID is left
// unset; the caller scopes the batch to a mission.
type Importer interface {
	Parse(r io.Reader) ([]expense.CreateParams, error)
}
