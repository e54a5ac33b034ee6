package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "personal-assistant/pkg/errors"
)

// processParseIntentReq binds and validates the parse-intent request body.
func (h *handler) processParseIntentReq(c *gin.Context) (parseIntentReq, error) {
	var req parseIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "field 'input' is required")
	}
	return req, req.validate()
}
