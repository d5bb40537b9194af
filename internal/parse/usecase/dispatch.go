package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
)

// dispatch maps the routed intent to its handler. Only the meal handler
// yields calorie sources.
func (uc *implUseCase) dispatch(ctx context.Context, ln *line) ([]model.ResultItem, []model.CalorieSource) {
	switch ln.routed.Intent {
	case model.IntentMeal:
		return uc.handleMeal(ctx, ln)
	case model.IntentExpense:
		return uc.handleExpense(ctx, ln), nil
	case model.IntentIncome:
		return uc.handleIncome(ctx, ln), nil
	case model.IntentEvent:
		return uc.handleEvent(ctx, ln), nil
	case model.IntentReminder:
		return uc.handleReminder(ctx, ln), nil
	case model.IntentActivity:
		return uc.handleActivity(ctx, ln), nil
	case model.IntentWorkStart:
		return uc.handleWorkStart(ctx, ln), nil
	case model.IntentWorkEnd:
		return uc.handleWorkEnd(ctx, ln), nil
	case model.IntentCalorieAdjustment:
		return uc.handleAdjustment(ctx, ln), nil
	case model.IntentJournal:
		return uc.handleJournal(ctx, ln), nil
	default:
		return uc.handleDefault(ctx, ln), nil
	}
}

// handleDefault passes an unmatched intent through as a plain echo.
func (uc *implUseCase) handleDefault(_ context.Context, ln *line) []model.ResultItem {
	return []model.ResultItem{uc.intentItem(ln), subjectItem(ln)}
}

// classifyConfidence is the single gate every model-derived value runs
// through. A nil confidence means the value came from a deterministic
// source and is always trusted.
func classifyConfidence(confidence *float64, threshold float64) bool {
	return confidence == nil || *confidence >= threshold
}

// gatedItem builds a field item, downgraded to low-confidence when the
// value's confidence fails the gate. Format validity is the caller's job;
// this gate only covers trust.
func gatedItem(field, value string, confidence *float64) model.ResultItem {
	item := model.ResultItem{Field: field, Value: value, IsValid: true, Confidence: confidence}
	if !classifyConfidence(confidence, ConfidenceThreshold) {
		msg := parse.MsgLowConfidence
		item.IsValid = false
		item.ErrorMessage = &msg
	}
	return item
}

// intentItem is always the first item a handler emits, carrying the
// classifier's confidence through the same gate as every other value.
func (uc *implUseCase) intentItem(ln *line) model.ResultItem {
	return gatedItem(parse.FieldIntent, string(ln.routed.Intent), ln.parsed.Intent.Confidence)
}

// subjectItem echoes the extracted object slug. The extraction chain ends
// at the raw text, so the value is never empty and always trusted.
func subjectItem(ln *line) model.ResultItem {
	return model.ValidItem(parse.FieldSubject, ln.parsed.Object.Value)
}

// dayItems appends the day slot as a valid, low-confidence or invalid item.
// A matched-but-unparseable date surfaces instead of being dropped.
func dayItems(items []model.ResultItem, p *model.ParsedResult) []model.ResultItem {
	if day := p.Day(); day != nil {
		return append(items, gatedItem(parse.FieldDay, day.Value, day.Confidence))
	}
	if p.InvalidDay != nil {
		return append(items, model.InvalidItem(parse.FieldDay, p.InvalidDay.Value, parse.MsgInvalidDay))
	}
	return items
}

func timeItems(items []model.ResultItem, p *model.ParsedResult) []model.ResultItem {
	if clock := p.Time(); clock != nil {
		return append(items, gatedItem(parse.FieldTime, clock.Value, clock.Confidence))
	}
	if p.InvalidTime != nil {
		return append(items, model.InvalidItem(parse.FieldTime, p.InvalidTime.Value, parse.MsgInvalidTime))
	}
	return items
}

// --- display formatting ---

func formatMoney(amount float64, code string) string {
	s := fmt.Sprintf("%.2f", amount)
	if code != "" {
		s += " " + code
	}
	return s
}

func formatSignedKcal(v float64) string {
	return fmt.Sprintf("%+d kcal", int(math.Round(v)))
}

func formatKcal(v float64) string {
	return fmt.Sprintf("%d kcal", int(math.Round(v)))
}

func formatGrams(v float64) string {
	return trimFloat(v) + "g"
}

func formatKm(v float64) string {
	return trimFloat(v) + " km"
}

func formatMinutes(v float64) string {
	return fmt.Sprintf("%d min", int(math.Round(v)))
}

// trimFloat renders to one decimal at most, dropping a trailing zero.
func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
