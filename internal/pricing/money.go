package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"gympoint-backend/internal/domain"
)

// ParseAmount converts a decimal money string into cents. Amounts with more
// than two decimal places are rounded half-up; negative amounts are rejected.
// Malformed input wraps domain.ErrInvalidAmount so the boundary can treat it
// as a validation failure.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount: %w", domain.ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("amount must not be negative %q: %w", s, domain.ErrInvalidAmount)
	}

	whole, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, domain.ErrInvalidAmount)
	}

	cents := units * 100
	if frac != "" {
		for _, c := range frac {
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("invalid amount %q: %w", s, domain.ErrInvalidAmount)
			}
		}
		// Keep three digits so the half-up rounding digit is available.
		padded := (frac + "000")[:3]
		milli, _ := strconv.ParseInt(padded, 10, 64)
		cents += milli / 10
		if milli%10 >= 5 {
			cents++
		}
	}
	return cents, nil
}

// FormatAmount renders cents as a two-decimal string for display and wire use.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
