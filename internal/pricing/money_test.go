package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gympoint-backend/internal/domain"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		cents int64
	}{
		{"45.50", 4550},
		{"50.00", 5000},
		{"50", 5000},
		{"0.05", 5},
		{".99", 99},
		{"10.5", 1050},
		{"1.005", 101},  // half-up on the third decimal
		{"1.004", 100},  // below the rounding threshold
		{"1.9999", 200}, // extra digits beyond the third are truncated
		{"0", 0},
	}
	for _, tc := range cases {
		cents, err := ParseAmount(tc.input)
		assert.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.cents, cents, "input %q", tc.input)
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "-1.00", "abc", "1.2x", "12.3.4"} {
			_, err := ParseAmount(s)
			assert.ErrorIs(t, err, domain.ErrInvalidAmount, "input %q", s)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "45.50", FormatAmount(4550))
	assert.Equal(t, "0.05", FormatAmount(5))
	assert.Equal(t, "4.50", FormatAmount(450))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "-12.34", FormatAmount(-1234))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 4550, 123456789} {
		parsed, err := ParseAmount(FormatAmount(cents))
		assert.NoError(t, err)
		assert.Equal(t, cents, parsed)
	}
}
