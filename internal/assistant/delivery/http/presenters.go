package http

import "personal-assistant/internal/assistant"

// --- Request DTOs ---

type generateEmailReq struct {
	Context *string `json:"context" binding:"required"`
	Subject string  `json:"subject"`
}

func (r generateEmailReq) validate() error { return nil }

func (r generateEmailReq) toInput() assistant.GenerateEmailInput {
	return assistant.GenerateEmailInput{
		Subject: r.Subject,
		Context: *r.Context,
	}
}

type suggestionsReq struct {
	Context *string `json:"context" binding:"required"`
}

func (r suggestionsReq) validate() error { return nil }

func (r suggestionsReq) toInput() assistant.SuggestionsInput {
	return assistant.SuggestionsInput{Context: *r.Context}
}

// --- Response DTOs ---

type generateEmailResp struct {
	EmailBody string `json:"email_body"`
}

func (h *handler) newGenerateEmailResp(out assistant.GenerateEmailOutput) generateEmailResp {
	return generateEmailResp{EmailBody: out.EmailBody}
}

type suggestionsResp struct {
	Suggestions string `json:"suggestions"`
}

func (h *handler) newSuggestionsResp(out assistant.SuggestionsOutput) suggestionsResp {
	return suggestionsResp{Suggestions: out.Suggestions}
}
