package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"lifelog-engine/internal/model"
	"lifelog-engine/pkg/llm"
)

// extractionWire is the decoded extraction response. One struct covers every
// intent; each prompt requests only the fields its intent needs.
type extractionWire struct {
	Object      string         `json:"object,omitempty"`
	Day         string         `json:"day,omitempty"`
	Time        string         `json:"time,omitempty"`
	Amount      *float64       `json:"amount,omitempty"`
	Currency    string         `json:"currency,omitempty"`
	DurationMin *float64       `json:"duration_min,omitempty"`
	DistanceKm  *float64       `json:"distance_km,omitempty"`
	Reps        *int           `json:"reps,omitempty"`
	Calories    *float64       `json:"calories,omitempty"`
	Items       []mealItemWire `json:"items,omitempty"`
	IsMenu      *bool          `json:"is_menu,omitempty"`
	SourceName  string         `json:"source_name,omitempty"`
	SourceURL   string         `json:"source_url,omitempty"`
	Mood        string         `json:"mood,omitempty"`
	Location    string         `json:"location,omitempty"`
	Confidence  *float64       `json:"confidence,omitempty"`
}

type mealItemWire struct {
	Name     string   `json:"name"`
	Grams    *float64 `json:"grams,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
}

// extractPromptFor maps an intent onto its extraction prompt. Intents with
// no slots to extract report false.
func extractPromptFor(intent model.Intent) (string, bool) {
	switch intent {
	case model.IntentMeal:
		return PromptExtractMeal, true
	case model.IntentExpense:
		return fmt.Sprintf(PromptExtractMoney, "expense"), true
	case model.IntentIncome:
		return fmt.Sprintf(PromptExtractMoney, "income"), true
	case model.IntentEvent:
		return fmt.Sprintf(PromptExtractSchedule, "event"), true
	case model.IntentReminder:
		return fmt.Sprintf(PromptExtractSchedule, "reminder"), true
	case model.IntentActivity:
		return PromptExtractActivity, true
	case model.IntentWorkStart, model.IntentWorkEnd:
		return PromptExtractWork, true
	case model.IntentCalorieAdjustment:
		return PromptExtractAdjustment, true
	case model.IntentJournal:
		return PromptExtractJournal, true
	default:
		return "", false
	}
}

// extract runs the per-intent extraction collaborator over the line.
func (uc *implUseCase) extract(ctx context.Context, intent model.Intent, text string) (*extractionWire, error) {
	prompt, ok := extractPromptFor(intent)
	if !ok {
		return nil, nil
	}

	resp, err := uc.llm.Complete(ctx, &llm.Request{
		System:      prompt,
		Prompt:      text,
		Temperature: ExtractTemperature,
	})
	if err != nil {
		return nil, err
	}

	raw, err := sanitizeJSONResponse(resp.Text)
	if err != nil {
		return nil, err
	}

	var wire extractionWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("decode extraction: %w", err)
	}
	return &wire, nil
}

// sanitizeJSONResponse strips markdown fences and repairs near-JSON model
// output before decoding.
func sanitizeJSONResponse(text string) (string, error) {
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

	if json.Valid([]byte(text)) {
		return text, nil
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return "", fmt.Errorf("repair extraction JSON: %w", err)
	}
	return repaired, nil
}
