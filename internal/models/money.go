package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers rather than quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateOnly truncates t to midnight UTC of its calendar day. Transaction,
// budget and recurrence dates are compared at day granularity.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the half-open [start, end) interval covering the given
// calendar month.
func MonthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
