package usecase

import (
	"context"
	"errors"
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
	"lifelog-engine/internal/units"
	"lifelog-engine/pkg/objectext"
)

// handleActivity resolves burned calories from the MET tables. The measured
// fields emit either way; a missing weight profile or an unrecognized
// activity surfaces on the calorie item alone.
func (uc *implUseCase) handleActivity(ctx context.Context, ln *line) []model.ResultItem {
	name := activityName(ln)
	items := []model.ResultItem{uc.intentItem(ln), model.ValidItem(parse.FieldSubject, name)}

	p := ln.parsed
	if p.Distance != nil {
		items = append(items, gatedItem(parse.FieldDistance, formatKm(p.Distance.Value), p.Distance.Confidence))
	}

	input := units.ActivityInput{Name: name}
	if p.Distance != nil {
		input.DistanceKm = &p.Distance.Value
	}
	if p.Duration != nil {
		input.DurationMin = &p.Duration.Value
	}
	if p.Reps != nil {
		input.Reps = &p.Reps.Value
	}

	prof, err := uc.profile.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "parse.handleActivity profile.Get: %v", err)
		prof = model.Profile{}
	}

	res, err := units.Calories(input, prof)
	switch {
	case err == nil:
		var durationConf *float64
		if p.Duration != nil {
			durationConf = p.Duration.Confidence
		}
		items = append(items, gatedItem(parse.FieldDuration, formatMinutes(res.DurationMin), durationConf))
		items = append(items, model.ValidItem(parse.FieldCalories, formatKcal(res.Calories)))
	case errors.Is(err, units.ErrUnknownActivity):
		items = modelDurationItem(items, p)
		items = append(items, model.InvalidItem(parse.FieldCalories, p.Object.Value, parse.MsgUnknownActivity))
	case errors.Is(err, units.ErrMissingProfile):
		items = modelDurationItem(items, p)
		items = append(items, model.InvalidItem(parse.FieldCalories, "", parse.MsgMissingProfile))
	default:
		// no duration, distance or reps to size the effort; nothing to burn
		items = modelDurationItem(items, p)
	}
	return items
}

// modelDurationItem keeps the model's duration visible on the paths where
// the resolver could not produce one of its own.
func modelDurationItem(items []model.ResultItem, p *model.ParsedResult) []model.ResultItem {
	if p.Duration == nil {
		return items
	}
	return append(items, gatedItem(parse.FieldDuration, formatMinutes(p.Duration.Value), p.Duration.Confidence))
}

// activityName is the subject with the measured distance span taken out, so
// "10km run" names "run".
func activityName(ln *line) string {
	if _, matched, ok := units.DistanceFromText(ln.text); ok {
		cleaned := strings.Replace(ln.text, matched, " ", 1)
		var fallback string
		if ln.wire != nil {
			fallback = ln.wire.Object
		}
		return objectext.Extract(cleaned, fallback, ln.sanitized)
	}
	return ln.parsed.Object.Value
}
