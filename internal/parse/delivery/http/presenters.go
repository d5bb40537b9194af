package http

import (
	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
)

// --- Request DTOs ---

type parseReq struct {
	Text         string `json:"text" binding:"required"`
	BaseCurrency string `json:"base_currency" binding:"omitempty,len=3"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() parse.ParseInput {
	return parse.ParseInput{
		Text:         r.Text,
		BaseCurrency: r.BaseCurrency,
	}
}

// --- Response DTOs ---

type itemResp struct {
	Field        string   `json:"field"`
	Value        string   `json:"value"`
	IsValid      bool     `json:"is_valid"`
	ErrorMessage *string  `json:"error_message,omitempty"`
	RawValue     *string  `json:"raw_value,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
}

func newItemResp(item model.ResultItem) itemResp {
	return itemResp{
		Field:        item.Field,
		Value:        item.Value,
		IsValid:      item.IsValid,
		ErrorMessage: item.ErrorMessage,
		RawValue:     item.RawValue,
		Confidence:   item.Confidence,
	}
}

type sourceResp struct {
	Name     string  `json:"name"`
	URL      *string `json:"url,omitempty"`
	Calories float64 `json:"calories"`
}

type parseResp struct {
	Intent  string       `json:"intent"`
	State   string       `json:"state"`
	Items   []itemResp   `json:"items"`
	Sources []sourceResp `json:"sources,omitempty"`
}

func (h *handler) newParseResp(out parse.ParseOutput) parseResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}

	var sources []sourceResp
	for _, s := range out.Sources {
		sources = append(sources, sourceResp{
			Name:     s.Name,
			URL:      s.URL,
			Calories: s.Calories,
		})
	}

	return parseResp{
		Intent:  string(out.Intent),
		State:   string(out.State),
		Items:   items,
		Sources: sources,
	}
}
