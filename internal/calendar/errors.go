package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrInvalidTime       = errors.New("invalid date-time")
	ErrInvalidTimeRange  = errors.New("end time is before start time")
	ErrInvalidOffset     = errors.New("time offset must not be negative")
	ErrInvalidMaxResults = errors.New("max results out of range")
	ErrCalendarAPI       = errors.New("calendar API request failed")
)
