package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Scope is the OAuth scope required for reading and writing events.
const Scope = calendar.CalendarScope

// Client wraps the Google Calendar API service. It is safe for concurrent use.
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client authenticated by ts.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	tz := req.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Location:    req.Location,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: dateTime(req.StartDateTime, req.StartTime),
			TimeZone: tz,
		},
		End: &calendar.EventDateTime{
			DateTime: dateTime(req.EndDateTime, req.EndTime),
			TimeZone: tz,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		Location:    created.Location,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Start:       event.Start.DateTime,
	}, nil
}

func dateTime(raw string, t time.Time) string {
	if raw != "" {
		return raw
	}
	return t.Format(time.RFC3339Nano)
}

// ListEvents returns single (expanded) events ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339))
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HtmlLink:    item.HtmlLink,
	}
	if item.Start != nil {
		ev.Start, ev.StartTime, ev.AllDay = parseEventDateTime(item.Start)
	}
	if item.End != nil {
		_, ev.EndTime, _ = parseEventDateTime(item.End)
	}
	return ev
}

// parseEventDateTime returns the raw value, its parsed time and whether it is a
// date-only (all-day) boundary.
func parseEventDateTime(dt *calendar.EventDateTime) (string, time.Time, bool) {
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return dt.DateTime, t, false
	}
	t, _ := time.Parse(time.DateOnly, dt.Date)
	return dt.Date, t, true
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}
