package usecase

import (
	"context"
	"time"

	"personal-assistant/internal/calendar"
	"personal-assistant/pkg/gcalendar"
	pkgLog "personal-assistant/pkg/log"
)

// Calendar is the subset of *gcalendar.Client the use case needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	cal        Calendar
	calendarID string
	now        func() time.Time
}

// New creates a new calendar UseCase instance.
func New(l pkgLog.Logger, cal Calendar, calendarID string) calendar.UseCase {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:          l,
		cal:        cal,
		calendarID: calendarID,
		now:        time.Now,
	}
}
