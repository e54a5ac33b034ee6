package calendar

import "context"

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// AddEvent inserts an event with explicit boundaries.
	AddEvent(ctx context.Context, input AddEventInput) (AddEventOutput, error)

	// SetReminder inserts a short event starting a few minutes from now.
	SetReminder(ctx context.Context, input SetReminderInput) (SetReminderOutput, error)

	// ListUpcoming returns events starting from now, ordered by start time.
	ListUpcoming(ctx context.Context, input ListUpcomingInput) (ListUpcomingOutput, error)
}
