package usecase

import (
	"context"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
)

// handleJournal emits the note fields. Mood, location and URL are all
// optional; an absent value is omitted, never an error.
func (uc *implUseCase) handleJournal(_ context.Context, ln *line) []model.ResultItem {
	items := []model.ResultItem{uc.intentItem(ln), subjectItem(ln)}

	p := ln.parsed
	if p.Mood != nil {
		items = append(items, gatedItem(parse.FieldMood, p.Mood.Value, p.Mood.Confidence))
	}
	if p.Location != nil {
		items = append(items, gatedItem(parse.FieldLocation, p.Location.Value, p.Location.Confidence))
	}
	if p.URL != nil {
		items = append(items, model.ValidItem(parse.FieldURL, p.URL.Value))
	}
	return items
}
