package paystatus

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidMonthKey is returned when a month key does not match the
// canonical YYYY-MM form. Malformed keys are rejected before any walk so
// that corrupted watermarks can never leak into financial totals.
var ErrInvalidMonthKey = errors.New("invalid month key, expected YYYY-MM")

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ParseMonthKey validates a YYYY-MM month key and returns the first instant
// of that month in IST.
func ParseMonthKey(key string) (time.Time, error) {
	if !monthKeyPattern.MatchString(key) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, key)
	}

	year, _ := strconv.Atoi(key[:4])
	month, _ := strconv.Atoi(key[5:])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, key)
	}

	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, IST), nil
}

// FormatMonthKey renders t's calendar month as a zero-padded YYYY-MM key.
// Zero-padding guarantees lexicographic order equals chronological order.
func FormatMonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthKeyOf builds a month key from a year and a 1-12 month number.
func MonthKeyOf(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d out of range", ErrInvalidMonthKey, month)
	}
	return fmt.Sprintf("%04d-%02d", year, month), nil
}
