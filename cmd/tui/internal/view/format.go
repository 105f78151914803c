package view

import (
	"context"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dbTimeout = 5 * time.Second

var amountPrinter = message.NewPrinter(language.French)

// FormatAmount renders a whole-ouguiya amount with French digit grouping,
// e.g. 1234567 -> "1 234 567 MRU".
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d MRU", amount)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
