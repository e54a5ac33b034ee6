package usecase

import (
	"context"
	"fmt"
	"time"

	"personal-assistant/internal/calendar"
	"personal-assistant/pkg/gcalendar"
)

// AddEvent creates an event in UTC on the configured calendar. The caller's
// date-time strings are validated and then sent unchanged.
func (uc *implUseCase) AddEvent(ctx context.Context, input calendar.AddEventInput) (calendar.AddEventOutput, error) {
	start, err := parseDateTime("start_time", input.StartTime)
	if err != nil {
		return calendar.AddEventOutput{}, err
	}
	end, err := parseDateTime("end_time", input.EndTime)
	if err != nil {
		return calendar.AddEventOutput{}, err
	}
	if end.Before(start) {
		return calendar.AddEventOutput{}, calendar.ErrInvalidTimeRange
	}

	ev, err := uc.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:    uc.calendarID,
		Summary:       input.Summary,
		Location:      input.Location,
		Description:   input.Description,
		StartTime:     start,
		EndTime:       end,
		StartDateTime: input.StartTime,
		EndDateTime:   input.EndTime,
		Timezone:      gcalendar.DefaultTimezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.calendar.usecase.AddEvent: %v", err)
		return calendar.AddEventOutput{}, fmt.Errorf("%w: %w", calendar.ErrCalendarAPI, err)
	}

	uc.l.Infof(ctx, "internal.calendar.usecase.AddEvent: created event %s", ev.ID)
	return calendar.AddEventOutput{EventID: ev.ID, HtmlLink: ev.HtmlLink}, nil
}

// SetReminder creates a fixed-length event starting TimeOffset minutes from now.
func (uc *implUseCase) SetReminder(ctx context.Context, input calendar.SetReminderInput) (calendar.SetReminderOutput, error) {
	if input.TimeOffset < 0 {
		return calendar.SetReminderOutput{}, calendar.ErrInvalidOffset
	}

	start := uc.now().UTC().Add(time.Duration(input.TimeOffset) * time.Minute)
	end := start.Add(calendar.ReminderDuration)

	ev, err := uc.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     input.Summary,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    gcalendar.DefaultTimezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.calendar.usecase.SetReminder: %v", err)
		return calendar.SetReminderOutput{}, fmt.Errorf("%w: %w", calendar.ErrCalendarAPI, err)
	}

	uc.l.Infof(ctx, "internal.calendar.usecase.SetReminder: created reminder %s at %s", ev.ID, start.Format(time.RFC3339))
	return calendar.SetReminderOutput{ReminderID: ev.ID, Start: start, End: end}, nil
}
