package gcalendar

import "time"

const (
	// DefaultCalendarID addresses the authenticated user's main calendar.
	DefaultCalendarID = "primary"

	// DefaultTimezone is applied to event boundaries when none is given.
	DefaultTimezone = "UTC"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Location    string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	// StartDateTime and EndDateTime, when set, are sent to the API as-is
	// instead of formatting StartTime and EndTime.
	StartDateTime string
	EndDateTime   string
	Timezone      string // e.g. "UTC"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	// Start is the raw start value: dateTime, or date for all-day events.
	Start string
}

// ListEventsRequest is the input for listing Google Calendar events.
// Zero TimeMax means no upper bound.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
