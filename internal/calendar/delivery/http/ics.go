package http

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"personal-assistant/internal/calendar"
)

const icsProductID = "-//personal-assistant//upcoming events//EN"

// renderICS serializes the events as a PUBLISH iCalendar feed.
func renderICS(events []calendar.UpcomingEvent, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetName("Upcoming events")

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(ev.Summary)
		if ev.AllDay {
			ve.SetAllDayStartAt(ev.StartTime)
			if !ev.EndTime.IsZero() {
				ve.SetAllDayEndAt(ev.EndTime)
			}
		} else {
			ve.SetStartAt(ev.StartTime)
			if !ev.EndTime.IsZero() {
				ve.SetEndAt(ev.EndTime)
			}
		}
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.HtmlLink != "" {
			ve.SetURL(ev.HtmlLink)
		}
	}

	return cal.Serialize()
}
