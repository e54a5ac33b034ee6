package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "personal-assistant/pkg/errors"
)

// processAddEventReq binds and validates the add-event request body.
func (h *handler) processAddEventReq(c *gin.Context) (addEventReq, error) {
	var req addEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "fields 'start_time' and 'end_time' are required")
	}
	return req, req.validate()
}

// processSetReminderReq binds the set-reminder body. Every field is optional,
// so an empty body is accepted.
func (h *handler) processSetReminderReq(c *gin.Context) (setReminderReq, error) {
	var req setReminderReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, pkgErrors.NewHTTPError(400, "invalid reminder payload")
	}
	return req, req.validate()
}

// processViewUpcomingReq binds the optional max_results query parameter.
func (h *handler) processViewUpcomingReq(c *gin.Context) (viewUpcomingReq, error) {
	var req viewUpcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "max_results must be an integer")
	}
	return req, req.validate()
}
