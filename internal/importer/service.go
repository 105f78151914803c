package importer

import (
	"fmt"
	"io"

	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/importer/bnm"
)

type Service struct {
	bnmImporter Importer
}

func NewService() *Service {
	return &Service{
		bnmImporter: bnm.New(),
	}
}

func (s *Service) Import(bank Bank, r io.Reader) ([]expense.CreateParams, error) {
	var importer Importer

	switch bank {
	case BankBNM:
		importer = s.bnmImporter
	default:
		return nil, fmt.Errorf("unknown bank: %s", bank)
	}

	return importer.Parse(r)
}
