package http

import "personal-assistant/internal/intent"

type parseIntentReq struct {
	Input *string `json:"input" binding:"required"`
}

func (r parseIntentReq) validate() error { return nil }

func (r parseIntentReq) toInput() intent.ParseInput {
	return intent.ParseInput{Text: *r.Input}
}

// parseIntentResp carries entities as [text, label] pairs.
type parseIntentResp struct {
	Intent   *string     `json:"intent" swaggertype:"string" extensions:"x-nullable"`
	Entities [][2]string `json:"entities"`
}

func (h *handler) newParseIntentResp(out intent.ParseOutput) parseIntentResp {
	resp := parseIntentResp{Entities: make([][2]string, 0, len(out.Entities))}
	if out.Intent != intent.None {
		s := string(out.Intent)
		resp.Intent = &s
	}
	for _, e := range out.Entities {
		resp.Entities = append(resp.Entities, [2]string{e.Text, e.Label})
	}
	return resp
}
