package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "personal-assistant/pkg/errors"
)

var errContextRequired = pkgErrors.NewHTTPError(400, "field 'context' is required")

// processGenerateEmailReq binds and validates the generate-email request body.
func (h *handler) processGenerateEmailReq(c *gin.Context) (generateEmailReq, error) {
	var req generateEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errContextRequired
	}
	return req, req.validate()
}

// processSuggestionsReq binds and validates the get-suggestions request body.
func (h *handler) processSuggestionsReq(c *gin.Context) (suggestionsReq, error) {
	var req suggestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errContextRequired
	}
	return req, req.validate()
}
