package intent

import "personal-assistant/pkg/ner"

// Intent is a coarse keyword-matched label describing the requested action.
type Intent string

const (
	// None means no keyword matched. It is reported as JSON null.
	None            Intent = ""
	ScheduleMeeting Intent = "schedule_meeting"
	RespondEmail    Intent = "respond_email"
	SetReminder     Intent = "set_reminder"
)

// ParseInput is the input for intent parsing.
type ParseInput struct {
	Text string
}

// ParseOutput is the classified intent plus the named entities found in the text.
type ParseOutput struct {
	Intent   Intent
	Entities []ner.Entity
}
