package paystatus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthKey(t *testing.T) {
	parsed, err := ParseMonthKey("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, IST, parsed.Location())
}

func TestParseMonthKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "2025", "2025-6", "2025-006", "06-2025", "2025-13", "2025-00", "abcd-ef"} {
		_, err := ParseMonthKey(key)
		assert.ErrorIs(t, err, ErrInvalidMonthKey, "key %q", key)
	}
}

func TestFormatMonthKeyZeroPads(t *testing.T) {
	assert.Equal(t, "2025-03", FormatMonthKey(time.Date(2025, time.March, 31, 23, 59, 0, 0, IST)))
	assert.Equal(t, "0999-12", FormatMonthKey(time.Date(999, time.December, 1, 0, 0, 0, 0, IST)))
}

func TestFormatParseRoundTripOrdering(t *testing.T) {
	// Lexicographic order on keys must equal chronological order.
	earlier := FormatMonthKey(time.Date(2025, time.September, 1, 0, 0, 0, 0, IST))
	later := FormatMonthKey(time.Date(2025, time.October, 1, 0, 0, 0, 0, IST))
	assert.Less(t, earlier, later)
}

func TestMonthKeyOf(t *testing.T) {
	key, err := MonthKeyOf(2025, 5)
	require.NoError(t, err)
	assert.Equal(t, "2025-05", key)

	_, err = MonthKeyOf(2025, 0)
	assert.ErrorIs(t, err, ErrInvalidMonthKey)
	_, err = MonthKeyOf(2025, 13)
	assert.ErrorIs(t, err, ErrInvalidMonthKey)
}

func TestISTOffset(t *testing.T) {
	_, offset := time.Date(2025, time.June, 15, 0, 0, 0, 0, IST).Zone()
	assert.Equal(t, 5*3600+1800, offset)
}

func TestNowReadsIST(t *testing.T) {
	now := Now()
	_, offset := now.Zone()
	assert.Equal(t, 5*3600+1800, offset)
}
