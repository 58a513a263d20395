package ytdata

import (
	"fmt"
	"time"
)

// The API emits RFC3339 timestamps both with and without fractional
// seconds; time.RFC3339 parsing accepts either shape.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedResponse, s)
	}
	return t, nil
}

// formatQueryTime renders a timestamp the way date-range search filters
// expect it: UTC, second precision, trailing literal Z.
func formatQueryTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
