package budget

import (
	"sort"
	"time"

	"github.com/cfed-mr/backoffice/internal/expense"
)

// SortOrder selects the direction of a month-trend sequence: ascending for
// chronological charts, descending for "most recent first" tables.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// MonthBucket aggregates the expenses of one calendar month.
type MonthBucket struct {
	Month string // YYYY-MM
	Total int64
	Count int
	// Evolution is the percentage change against the previous chronological
	// month. The first bucket, or a bucket following a zero-total month,
	// reports 0.
	Evolution float64
}

// ExpensesByMonth buckets expenses by calendar month over the trailing
// monthsBack months ending at now. The clock is a parameter, not a read of
// time.Now, so the window is reproducible in tests. Only months that have
// at least one expense produce a bucket.
func ExpensesByMonth(expenses []*expense.Expense, monthsBack int, now time.Time, order SortOrder) []MonthBucket {
	if monthsBack <= 0 {
		return nil
	}

	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthsBack - 1), 0)

	totals := make(map[string]*MonthBucket)

	for _, e := range expenses {
		if e.Date.Before(windowStart) || e.Date.After(now) {
			continue
		}

		key := e.Date.Format("2006-01")

		b, ok := totals[key]
		if !ok {
			b = &MonthBucket{Month: key}
			totals[key] = b
		}

		b.Total += e.Amount
		b.Count++
	}

	buckets := make([]MonthBucket, 0, len(totals))
	for _, b := range totals {
		buckets = append(buckets, *b)
	}

	// YYYY-MM keys sort chronologically as strings.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})

	for i := 1; i < len(buckets); i++ {
		prev := buckets[i-1].Total
		if prev > 0 {
			buckets[i].Evolution = float64(buckets[i].Total-prev) / float64(prev) * 100
		}
	}

	if order == SortDescending {
		for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
			buckets[i], buckets[j] = buckets[j], buckets[i]
		}
	}

	return buckets
}
