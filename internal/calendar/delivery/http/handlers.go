package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/pkg/response"
)

// AddEvent godoc
// @Summary     Add a calendar event
// @Description Inserts an event on the configured calendar with UTC boundaries.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body addEventReq true "Event data"
// @Success     200  {object} addEventResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Calendar API failure"
// @Router      /add-event [POST]
func (h *handler) AddEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newAddEventResp(output))
}

// SetReminder godoc
// @Summary     Set a reminder
// @Description Inserts a 10 minute event starting time_offset minutes from now (default 10).
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body setReminderReq false "Reminder data"
// @Success     200  {object} setReminderResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Calendar API failure"
// @Router      /set-reminder [POST]
func (h *handler) SetReminder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetReminderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetReminder(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetReminder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newSetReminderResp(output))
}

// ViewUpcomingEvents godoc
// @Summary     List upcoming events
// @Description Returns events starting from now ordered by start time.
// @Tags        Calendar
// @Produce     json
// @Param       max_results query int false "Number of events (1-250, default 10)"
// @Success     200 {object} viewUpcomingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar API failure"
// @Router      /view-upcoming-events [GET]
func (h *handler) ViewUpcomingEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processViewUpcomingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListUpcoming(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUpcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newViewUpcomingResp(output))
}

// ExportUpcomingEvents godoc
// @Summary     Export upcoming events
// @Description Returns the upcoming events as an iCalendar feed.
// @Tags        Calendar
// @Produce     text/calendar
// @Param       max_results query int false "Number of events (1-250, default 10)"
// @Success     200 {string} string "iCalendar feed"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar API failure"
// @Router      /view-upcoming-events.ics [GET]
func (h *handler) ExportUpcomingEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processViewUpcomingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListUpcoming(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUpcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(renderICS(output.Events, time.Now().UTC())))
}
