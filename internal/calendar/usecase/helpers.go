package usecase

import (
	"fmt"
	"time"

	"personal-assistant/internal/calendar"
)

// naiveLayout is an ISO 8601 date-time without offset, as produced by
// clients that serialize UTC times without a zone designator.
const naiveLayout = "2006-01-02T15:04:05"

// parseDateTime accepts RFC3339 and falls back to an offset-less date-time
// interpreted as UTC.
func parseDateTime(field, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(naiveLayout, value, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s %q", calendar.ErrInvalidTime, field, value)
}
