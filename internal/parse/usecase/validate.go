package usecase

import (
	"lifelog-engine/internal/currency"
	"lifelog-engine/internal/model"
	"lifelog-engine/internal/units"
	"lifelog-engine/pkg/objectext"
	"lifelog-engine/pkg/textnorm"
)

// buildParsed runs the deterministic validators over the line and folds the
// model's answers in behind them: a pattern match from the text always beats
// a model candidate for the same slot.
func (uc *implUseCase) buildParsed(ln *line) {
	var candDay, candTime, fallbackObject string
	if ln.wire != nil {
		candDay, candTime, fallbackObject = ln.wire.Day, ln.wire.Time, ln.wire.Object
	}
	ln.sanitized = uc.sanitizer.Sanitize(ln.text, ln.translated, candDay, candTime)

	conf := wireConfidence(ln.wire)
	p := &model.ParsedResult{
		Intent: model.NewModelSlot(ln.routed.Intent, ln.routed.Confidence),
		Object: model.NewSlot(objectext.Extract(ln.text, fallbackObject, ln.sanitized), model.SlotPattern),
	}

	temporalSlots(ln, p, conf)
	moneySlots(ln, p, conf)
	activitySlots(ln, p, conf)
	mealSlots(ln, p, conf)
	journalSlots(ln, p, conf)

	ln.parsed = p
}

// temporalSlots routes the sanitized day/time pair to the reminder or event
// side, keyed by intent, and carries invalid raw inputs alongside.
func temporalSlots(ln *line, p *model.ParsedResult, conf *float64) {
	var day, clock *model.Slot[string]
	if ln.sanitized.Day != nil {
		day = temporalSlot(*ln.sanitized.Day, ln.sanitized.MatchedDay, modelDayCandidate(ln), conf)
	}
	if ln.sanitized.Time != nil {
		clock = temporalSlot(*ln.sanitized.Time, ln.sanitized.MatchedTime, modelTimeCandidate(ln), conf)
	}

	if ln.routed.Intent == model.IntentReminder {
		p.ReminderDay, p.ReminderTime = day, clock
	} else {
		p.EventDay, p.EventTime = day, clock
	}

	if ln.sanitized.InvalidDayInput != nil {
		p.InvalidDay = model.NewSlot(*ln.sanitized.InvalidDayInput, model.SlotPattern)
	}
	if ln.sanitized.InvalidTimeInput != nil {
		p.InvalidTime = model.NewSlot(*ln.sanitized.InvalidTimeInput, model.SlotPattern)
	}
}

// temporalSlot tags a resolved value with its provenance: a matched
// substring means the text itself supplied it; otherwise it was the model's
// candidate and keeps the model's confidence.
func temporalSlot(value, matched string, candidate bool, conf *float64) *model.Slot[string] {
	if matched == "" && candidate {
		return &model.Slot[string]{Value: value, Confidence: conf, Source: model.SlotModel}
	}
	return model.NewSlot(value, model.SlotPattern)
}

func modelDayCandidate(ln *line) bool {
	return ln.wire != nil && ln.wire.Day != ""
}

func modelTimeCandidate(ln *line) bool {
	return ln.wire != nil && ln.wire.Time != ""
}

func moneySlots(ln *line, p *model.ParsedResult, conf *float64) {
	switch ln.routed.Intent {
	case model.IntentExpense, model.IntentIncome:
		if ln.wire != nil && ln.wire.Amount != nil {
			p.Amount = modelSlot(*ln.wire.Amount, conf)
		} else if amt, ok := currency.ParseAmount(ln.text); ok {
			p.Amount = model.NewSlot(amt, model.SlotPattern)
		}
	case model.IntentCalorieAdjustment:
		// the adjustment magnitude rides the amount slot
		if ln.wire != nil && ln.wire.Calories != nil {
			p.Amount = modelSlot(*ln.wire.Calories, conf)
		} else if kcal, _, ok := units.CaloriesFromText(ln.text); ok {
			p.Amount = model.NewSlot(kcal, model.SlotPattern)
		}
	}

	if code, ok := currency.Detect(ln.text); ok {
		p.Currency = model.NewSlot(code, model.SlotPattern)
	} else if ln.wire != nil && ln.wire.Currency != "" {
		if code, ok := currency.Normalize(ln.wire.Currency); ok {
			p.Currency = modelSlot(code, conf)
		}
	}
}

func activitySlots(ln *line, p *model.ParsedResult, conf *float64) {
	if km, _, ok := units.DistanceFromText(ln.text); ok {
		p.Distance = model.NewSlot(km, model.SlotPattern)
	} else if ln.wire != nil && ln.wire.DistanceKm != nil {
		p.Distance = modelSlot(*ln.wire.DistanceKm, conf)
	}
	if ln.wire != nil && ln.wire.DurationMin != nil {
		p.Duration = modelSlot(*ln.wire.DurationMin, conf)
	}
	if ln.wire != nil && ln.wire.Reps != nil {
		p.Reps = modelSlot(*ln.wire.Reps, conf)
	}
}

func mealSlots(ln *line, p *model.ParsedResult, conf *float64) {
	if g, _, ok := units.GramsFromText(ln.text); ok {
		p.MealGrams = model.NewSlot(g, model.SlotPattern)
	}
	if ln.wire == nil {
		return
	}
	if len(ln.wire.Items) > 0 {
		first := ln.wire.Items[0]
		if p.MealGrams == nil && first.Grams != nil {
			p.MealGrams = modelSlot(*first.Grams, conf)
		}
		if first.Calories != nil {
			p.MealCalories = modelSlot(*first.Calories, conf)
		}
	}
	if ln.wire.IsMenu != nil {
		p.MealIsMenu = modelSlot(*ln.wire.IsMenu, conf)
	}
}

func journalSlots(ln *line, p *model.ParsedResult, conf *float64) {
	if ln.wire != nil && ln.wire.Mood != "" {
		p.Mood = modelSlot(ln.wire.Mood, conf)
	}
	if ln.wire != nil && ln.wire.Location != "" {
		p.Location = modelSlot(ln.wire.Location, conf)
	}
	if u := textnorm.FirstURL(ln.text); u != "" {
		p.URL = model.NewSlot(u, model.SlotPattern)
	}
}

// modelSlot builds a model-derived slot whose confidence may be absent.
func modelSlot[T any](value T, conf *float64) *model.Slot[T] {
	return &model.Slot[T]{Value: value, Confidence: conf, Source: model.SlotModel}
}

// wireConfidence normalizes the extraction confidence; some models answer
// in percent despite the prompt.
func wireConfidence(w *extractionWire) *float64 {
	if w == nil || w.Confidence == nil {
		return nil
	}
	c := *w.Confidence
	if c > 1 {
		c /= 100
	}
	if c < 0 {
		c = 0
	}
	return &c
}
