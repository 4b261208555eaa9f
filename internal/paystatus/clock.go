package paystatus

import (
	"time"
)

// Clock returns the current instant. Services take a Clock so that status
// computations can be pinned to a fixed instant in tests and batch reports.
type Clock func() time.Time

// IST is the fixed UTC+5:30 civil timezone all due/overdue boundaries are
// evaluated in, regardless of the host timezone.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Now returns the current instant in IST. This is the production Clock.
func Now() time.Time {
	return time.Now().In(IST)
}

// dayStart strips the time-of-day component, keeping the location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthStart returns the first instant of t's calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
