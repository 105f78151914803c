package bnm

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/cfed-mr/backoffice/internal/encoding"
	"github.com/cfed-mr/backoffice/internal/expense"
)

func (p *Parser) Parse(r io.Reader) ([]expense.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching BNM statement format found")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts expense params from data rows. Credit movements are
// skipped: only disbursements become expenses. Rows without a parseable
// date (totals, footers) are skipped too, but a debit row missing its
// receipt reference is an error, not a skip: an expense without a
// justificatif must not slip in silently.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]expense.CreateParams, error) {
	dateIdx := cols[p.DateCol]
	labelIdx := cols[p.LabelCol]
	receiptIdx := cols[p.ReceiptCol]

	var params []expense.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			continue
		}

		label := cellValue(row, labelIdx)
		if label == "" {
			return nil, fmt.Errorf("row %d: missing label", rowNum)
		}

		amount, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		receipt := cellValue(row, receiptIdx)
		if receipt == "" {
			return nil, fmt.Errorf("row %d: missing receipt reference", rowNum)
		}

		params = append(params, expense.CreateParams{
			Name:       label,
			Date:       date,
			Amount:     amount,
			ReceiptRef: receipt,
		})
	}

	return params, nil
}

func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseAmount returns the debit amount of a row, or false for credits and
// empty cells.
func parseAmount(p *Profile, cols colIndex, row []string) (int64, bool) {
	switch p.AmountMode {
	case amountSingle:
		v, err := parseFrenchAmount(cellValue(row, cols[p.AmountCol]))
		if err != nil || v >= 0 {
			return 0, false
		}

		return -v, true
	case amountSplit:
		debit := cellValue(row, cols[p.DebitCol])
		if debit == "" {
			return 0, false
		}

		v, err := parseFrenchAmount(debit)
		if err != nil || v <= 0 {
			return 0, false
		}

		return v, true
	}

	return 0, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
