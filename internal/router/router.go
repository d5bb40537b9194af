package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/pkg/llm"
)

// Classify determines user intent from a single message
// Convention: Method accepts context.Context as first parameter
func (r *SemanticRouter) Classify(ctx context.Context, message string) (Output, error) {
	resp, err := r.llm.Complete(ctx, &llm.Request{
		System:      PromptClassifySystem,
		Prompt:      message,
		Temperature: ClassifyTemperature,
	})
	if err != nil {
		return Output{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	responseText := stripCodeFence(resp.Text)

	var wire wireOutput
	if err := json.Unmarshal([]byte(responseText), &wire); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return Output{
			Intent:     model.IntentNone,
			Confidence: ClassifyFallbackConfidence,
			Reasoning:  ReasonParsingError,
		}, nil
	}

	intent, ok := model.ParseIntent(strings.ToLower(strings.TrimSpace(wire.Intent)))
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownIntent, wire.Intent)
		return Output{
			Intent:     model.IntentNone,
			Confidence: ClassifyFallbackConfidence,
			Reasoning:  ReasonUnknownIntent,
		}, nil
	}

	confidence := wire.Confidence
	// Some models answer in percent despite the prompt
	if confidence > 1 {
		confidence = confidence / 100
	}
	if confidence < 0 {
		confidence = 0
	}

	r.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", LogPrefixClassify, intent, confidence)
	return Output{
		Intent:     intent,
		Confidence: confidence,
		Reasoning:  wire.Reasoning,
	}, nil
}

// stripCodeFence removes markdown code blocks if present
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}
