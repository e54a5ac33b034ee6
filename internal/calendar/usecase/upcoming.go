package usecase

import (
	"context"
	"fmt"

	"personal-assistant/internal/calendar"
	"personal-assistant/pkg/gcalendar"
)

// ListUpcoming lists expanded events starting from now, ordered by start time.
// MaxResults must be within 1..MaxUpcomingLimit.
func (uc *implUseCase) ListUpcoming(ctx context.Context, input calendar.ListUpcomingInput) (calendar.ListUpcomingOutput, error) {
	limit := input.MaxResults
	if limit < 1 || limit > calendar.MaxUpcomingLimit {
		return calendar.ListUpcomingOutput{}, calendar.ErrInvalidMaxResults
	}

	events, err := uc.cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    uc.now().UTC(),
		MaxResults: int64(limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.calendar.usecase.ListUpcoming: %v", err)
		return calendar.ListUpcomingOutput{}, fmt.Errorf("%w: %w", calendar.ErrCalendarAPI, err)
	}

	out := calendar.ListUpcomingOutput{Events: make([]calendar.UpcomingEvent, 0, len(events))}
	for _, ev := range events {
		out.Events = append(out.Events, calendar.UpcomingEvent{
			ID:          ev.ID,
			Summary:     ev.Summary,
			Description: ev.Description,
			Location:    ev.Location,
			HtmlLink:    ev.HtmlLink,
			Start:       ev.Start,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
			AllDay:      ev.AllDay,
		})
	}
	return out, nil
}
