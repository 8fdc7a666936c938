package pricing

import (
	"fmt"
	"time"

	"gympoint-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate accepts ISO YYYY-MM-DD only. Dates cross every external boundary
// in this one format; slash-separated and other legacy shapes are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, domain.ErrInvalidDateRange)
	}
	return t, nil
}

// FormatDate renders a date in the boundary format.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// midnight re-anchors the calendar day at UTC midnight. Subtracting two
// re-anchored instants is invariant to DST shifts in the input locations,
// which is what makes the inclusive day count safe year-round.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Duration returns the day count between two dates, inclusive of both
// endpoints: start == end is 1 day, start + N days is N+1. The result is
// clamped to a minimum of 1.
func Duration(start, end time.Time) (int32, error) {
	s, e := midnight(start), midnight(end)
	if e.Before(s) {
		return 0, domain.ErrInvalidDateRange
	}
	days := int32(e.Sub(s)/(24*time.Hour)) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}

// LineSubtotal computes quantity * unit price * days in exact cents.
func LineSubtotal(quantity int32, unitPriceCents int64, days int32) int64 {
	return int64(quantity) * unitPriceCents * int64(days)
}

// OrderTotal sums line subtotals. Preview and submit both call this; there is
// no second formula anywhere.
func OrderTotal(lines []domain.RentalLine) int64 {
	var total int64
	for i := range lines {
		total += lines[i].SubtotalCents
	}
	return total
}
