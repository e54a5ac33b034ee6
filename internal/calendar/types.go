package calendar

import "time"

const (
	// DefaultReminderSummary is used when a reminder has no summary.
	DefaultReminderSummary = "Reminder"

	// DefaultReminderOffset is how far ahead a reminder starts, in minutes.
	DefaultReminderOffset = 10

	// ReminderDuration is the length of every reminder event.
	ReminderDuration = 10 * time.Minute

	// DefaultUpcomingLimit and MaxUpcomingLimit bound the upcoming-events listing.
	DefaultUpcomingLimit = 10
	MaxUpcomingLimit     = 250
)

// AddEventInput carries the event fields; StartTime and EndTime are
// RFC3339 date-times (a missing offset is read as UTC).
type AddEventInput struct {
	Summary     string
	Location    string
	Description string
	StartTime   string
	EndTime     string
}

type AddEventOutput struct {
	EventID  string
	HtmlLink string
}

// SetReminderInput describes a short event starting TimeOffset minutes from now.
type SetReminderInput struct {
	Summary     string
	Description string
	TimeOffset  int
}

type SetReminderOutput struct {
	ReminderID string
	Start      time.Time
	End        time.Time
}

type ListUpcomingInput struct {
	MaxResults int
}

// UpcomingEvent is one event starting at or after now.
// Start is the raw dateTime, or the date for all-day events.
type UpcomingEvent struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	Start       string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

type ListUpcomingOutput struct {
	Events []UpcomingEvent
}
