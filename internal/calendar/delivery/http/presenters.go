package http

import "personal-assistant/internal/calendar"

// --- Request DTOs ---

type addEventReq struct {
	Summary     string `json:"summary"`
	Location    string `json:"location"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required" example:"2025-06-02T09:00:00Z"`
	EndTime     string `json:"end_time"   binding:"required" example:"2025-06-02T10:00:00Z"`
}

func (r addEventReq) validate() error { return nil }

func (r addEventReq) toInput() calendar.AddEventInput {
	return calendar.AddEventInput{
		Summary:     r.Summary,
		Location:    r.Location,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

// setReminderReq uses pointers so an absent field takes its default
// while an explicit empty value is kept.
type setReminderReq struct {
	Summary     *string `json:"summary"`
	Description string  `json:"description"`
	TimeOffset  *int    `json:"time_offset" example:"10"`
}

func (r setReminderReq) validate() error { return nil }

func (r setReminderReq) toInput() calendar.SetReminderInput {
	in := calendar.SetReminderInput{
		Summary:     calendar.DefaultReminderSummary,
		Description: r.Description,
		TimeOffset:  calendar.DefaultReminderOffset,
	}
	if r.Summary != nil {
		in.Summary = *r.Summary
	}
	if r.TimeOffset != nil {
		in.TimeOffset = *r.TimeOffset
	}
	return in
}

// viewUpcomingReq.MaxResults is nil when the query omits max_results.
type viewUpcomingReq struct {
	MaxResults *int `form:"max_results"`
}

func (r viewUpcomingReq) validate() error {
	if r.MaxResults != nil && (*r.MaxResults < 1 || *r.MaxResults > calendar.MaxUpcomingLimit) {
		return errMaxResultsRange
	}
	return nil
}

func (r viewUpcomingReq) toInput() calendar.ListUpcomingInput {
	in := calendar.ListUpcomingInput{MaxResults: calendar.DefaultUpcomingLimit}
	if r.MaxResults != nil {
		in.MaxResults = *r.MaxResults
	}
	return in
}

// --- Response DTOs ---

type addEventResp struct {
	EventID string `json:"event_id"`
}

func (h *handler) newAddEventResp(out calendar.AddEventOutput) addEventResp {
	return addEventResp{EventID: out.EventID}
}

type setReminderResp struct {
	ReminderID string `json:"reminder_id"`
}

func (h *handler) newSetReminderResp(out calendar.SetReminderOutput) setReminderResp {
	return setReminderResp{ReminderID: out.ReminderID}
}

type upcomingEventResp struct {
	Summary string `json:"summary"`
	Start   string `json:"start"`
}

type viewUpcomingResp struct {
	UpcomingEvents []upcomingEventResp `json:"upcoming_events"`
}

func (h *handler) newViewUpcomingResp(out calendar.ListUpcomingOutput) viewUpcomingResp {
	events := make([]upcomingEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = upcomingEventResp{Summary: ev.Summary, Start: ev.Start}
	}
	return viewUpcomingResp{UpcomingEvents: events}
}
