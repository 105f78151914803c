package budget_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/expense"
)

func exp(date string, amount int64) *expense.Expense {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	return &expense.Expense{
		ID:         uuid.New(),
		Date:       d,
		Amount:     amount,
		ReceiptRef: "J-001",
	}
}

func TestExpensesByMonth_Grouping(t *testing.T) {
	expenses := []*expense.Expense{
		exp("2024-01-05", 100),
		exp("2024-01-20", 50),
		exp("2024-02-01", 10),
	}

	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	buckets := budget.ExpensesByMonth(expenses, 12, now, budget.SortAscending)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2024-01", buckets[0].Month)
	assert.Equal(t, int64(150), buckets[0].Total)
	assert.Equal(t, 2, buckets[0].Count)

	assert.Equal(t, "2024-02", buckets[1].Month)
	assert.Equal(t, int64(10), buckets[1].Total)
	assert.Equal(t, 1, buckets[1].Count)
}

func TestExpensesByMonth_Window(t *testing.T) {
	expenses := []*expense.Expense{
		exp("2023-01-10", 999), // outside the trailing window
		exp("2024-01-10", 100),
		exp("2024-03-10", 300), // after now
	}

	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	buckets := budget.ExpensesByMonth(expenses, 12, now, budget.SortAscending)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-01", buckets[0].Month)
}

func TestExpensesByMonth_Evolution(t *testing.T) {
	expenses := []*expense.Expense{
		exp("2024-01-10", 100),
		exp("2024-02-10", 150),
		exp("2024-03-10", 75),
	}

	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	buckets := budget.ExpensesByMonth(expenses, 12, now, budget.SortAscending)
	require.Len(t, buckets, 3)

	assert.Equal(t, 0.0, buckets[0].Evolution) // no predecessor
	assert.InDelta(t, 50.0, buckets[1].Evolution, 0.0001)
	assert.InDelta(t, -50.0, buckets[2].Evolution, 0.0001)
}

func TestExpensesByMonth_Descending(t *testing.T) {
	expenses := []*expense.Expense{
		exp("2024-01-10", 100),
		exp("2024-02-10", 200),
	}

	now := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

	buckets := budget.ExpensesByMonth(expenses, 12, now, budget.SortDescending)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2024-02", buckets[0].Month)
	assert.Equal(t, "2024-01", buckets[1].Month)
	// Evolution stays chronological even when the sequence is reversed.
	assert.InDelta(t, 100.0, buckets[0].Evolution, 0.0001)
	assert.Equal(t, 0.0, buckets[1].Evolution)
}

func TestExpensesByMonth_Empty(t *testing.T) {
	now := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

	buckets := budget.ExpensesByMonth(nil, 12, now, budget.SortAscending)
	assert.Empty(t, buckets)
}
