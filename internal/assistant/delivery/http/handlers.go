package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/pkg/response"
)

// GenerateEmail godoc
// @Summary     Draft an email
// @Description Asks the language model for a professional email about the subject.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body generateEmailReq true "Subject and context"
// @Success     200  {object} generateEmailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Language model rate limited"
// @Failure     502  {object} response.Resp "Language model failure"
// @Failure     504  {object} response.Resp "Language model timed out"
// @Router      /generate-email [POST]
func (h *handler) GenerateEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateEmailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateEmail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateEmail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newGenerateEmailResp(output))
}

// GetSuggestions godoc
// @Summary     Suggest actions
// @Description Asks the language model for useful actions based on the context.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body suggestionsReq true "User context"
// @Success     200  {object} suggestionsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Language model rate limited"
// @Failure     502  {object} response.Resp "Language model failure"
// @Failure     504  {object} response.Resp "Language model timed out"
// @Router      /get-suggestions [POST]
func (h *handler) GetSuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestionsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetSuggestions(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSuggestions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newSuggestionsResp(output))
}
