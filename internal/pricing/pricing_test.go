package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gympoint-backend/internal/domain"
)

func TestParseDate(t *testing.T) {
	t.Run("AcceptsISO", func(t *testing.T) {
		d, err := ParseDate("2026-03-15")
		assert.NoError(t, err)
		assert.Equal(t, "2026-03-15", FormatDate(d))
	})

	t.Run("RejectsSlashes", func(t *testing.T) {
		_, err := ParseDate("15/03/2026")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		for _, s := range []string{"", "2026-3-15", "2026-13-01", "tomorrow"} {
			_, err := ParseDate(s)
			assert.ErrorIs(t, err, domain.ErrInvalidDateRange, "input %q", s)
		}
	})
}

func TestDuration(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}

	t.Run("SameDayIsOne", func(t *testing.T) {
		days, err := Duration(day("2026-05-10"), day("2026-05-10"))
		assert.NoError(t, err)
		assert.Equal(t, int32(1), days)
	})

	t.Run("InclusiveOfBothEndpoints", func(t *testing.T) {
		days, err := Duration(day("2026-05-10"), day("2026-05-12"))
		assert.NoError(t, err)
		assert.Equal(t, int32(3), days)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := Duration(day("2026-05-12"), day("2026-05-10"))
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("MonthBoundary", func(t *testing.T) {
		days, err := Duration(day("2026-01-30"), day("2026-02-02"))
		assert.NoError(t, err)
		assert.Equal(t, int32(4), days)
	})

	t.Run("DSTTransitionDoesNotShiftCount", func(t *testing.T) {
		// US spring-forward happens on 2026-03-08. A naive wall-clock
		// subtraction in that zone yields 23 hours for the first day.
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skip("tzdata unavailable")
		}
		start := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
		end := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)

		days, err := Duration(start, end)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), days)
	})
}

func TestLineSubtotalAndOrderTotal(t *testing.T) {
	t.Run("TwoItemsThreeDays", func(t *testing.T) {
		// 2 units at 10.00/day for 3 days is 60.00.
		subtotal := LineSubtotal(2, 1000, 3)
		assert.Equal(t, int64(6000), subtotal)
	})

	t.Run("OrderTotalSumsLines", func(t *testing.T) {
		lines := []domain.RentalLine{
			{SubtotalCents: 6000},
			{SubtotalCents: 1550},
			{SubtotalCents: 25},
		}
		assert.Equal(t, int64(7575), OrderTotal(lines))
	})

	t.Run("EmptyOrderIsZero", func(t *testing.T) {
		assert.Equal(t, int64(0), OrderTotal(nil))
	})
}
