package usecase

import (
	"context"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
	"lifelog-engine/pkg/datemath"
)

func (uc *implUseCase) handleEvent(_ context.Context, ln *line) []model.ResultItem {
	return uc.scheduleItems(ln)
}

func (uc *implUseCase) handleReminder(_ context.Context, ln *line) []model.ResultItem {
	return uc.scheduleItems(ln)
}

// scheduleItems emits intent, subject, day, time. The sanitizer always
// resolves a day (falling back to today), so only the time item can be
// absent.
func (uc *implUseCase) scheduleItems(ln *line) []model.ResultItem {
	items := []model.ResultItem{uc.intentItem(ln), subjectItem(ln)}
	items = dayItems(items, ln.parsed)
	items = timeItems(items, ln.parsed)
	return items
}

func (uc *implUseCase) handleWorkStart(_ context.Context, ln *line) []model.ResultItem {
	return uc.workItems(ln)
}

func (uc *implUseCase) handleWorkEnd(_ context.Context, ln *line) []model.ResultItem {
	return uc.workItems(ln)
}

// workItems marks a session boundary. A bare "clocking in" carries no clock
// value, so the time defaults to the engine's current wall clock.
func (uc *implUseCase) workItems(ln *line) []model.ResultItem {
	items := []model.ResultItem{uc.intentItem(ln), subjectItem(ln)}
	items = dayItems(items, ln.parsed)

	p := ln.parsed
	switch {
	case p.Time() != nil:
		clock := p.Time()
		items = append(items, gatedItem(parse.FieldTime, clock.Value, clock.Confidence))
	case p.InvalidTime != nil:
		items = append(items, model.InvalidItem(parse.FieldTime, p.InvalidTime.Value, parse.MsgInvalidTime))
	default:
		items = append(items, model.ValidItem(parse.FieldTime, uc.sanitizer.Now().Format(datemath.ClockLayout)))
	}
	return items
}
