package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/pkg/response"
)

// ParseIntent godoc
// @Summary     Parse a command
// @Description Classifies the command by keyword and extracts named entities.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body parseIntentReq true "Command text"
// @Success     200  {object} parseIntentResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /parse-intent [POST]
func (h *handler) ParseIntent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseIntentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newParseIntentResp(output))
}
