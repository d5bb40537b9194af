package usecase

import (
	"context"
	"math"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
	"lifelog-engine/pkg/textnorm"
)

func (uc *implUseCase) handleExpense(_ context.Context, ln *line) []model.ResultItem {
	return uc.moneyItems(ln, true)
}

func (uc *implUseCase) handleIncome(_ context.Context, ln *line) []model.ResultItem {
	return uc.moneyItems(ln, false)
}

// moneyItems emits intent, subject, amount. Expenses display negative and
// income positive regardless of how the model signed the figure. Money
// intents require an amount, so a line without one gets a placeholder
// missing item instead of a silent omission.
func (uc *implUseCase) moneyItems(ln *line, expense bool) []model.ResultItem {
	items := []model.ResultItem{uc.intentItem(ln), model.ValidItem(parse.FieldSubject, moneySubject(ln))}

	p := ln.parsed
	if p.Amount == nil {
		return append(items, model.InvalidItem(parse.FieldAmount, "", parse.MsgMissingAmount))
	}

	amount := math.Abs(p.Amount.Value)
	if expense {
		amount = -amount
	}
	code := ln.scope.BaseCurrency
	if p.Currency != nil {
		code = p.Currency.Value
	}
	return append(items, gatedItem(parse.FieldAmount, formatMoney(amount, code), p.Amount.Confidence))
}

// moneySubject prefers the model's object name; amounts have no reliably
// strippable span, so the deterministic residue would keep the figure in
// the slug.
func moneySubject(ln *line) string {
	if ln.wire != nil {
		if slug := textnorm.Slugify(ln.wire.Object); slug != "" {
			return slug
		}
	}
	return ln.parsed.Object.Value
}

// handleAdjustment emits a signed calorie correction. Bare "+N kcal" lines
// resolve in the expression shortcut; what reaches here is phrasing like
// "ate 150 kcal extra", where the sign comes from the model and defaults
// to positive.
func (uc *implUseCase) handleAdjustment(_ context.Context, ln *line) []model.ResultItem {
	items := []model.ResultItem{uc.intentItem(ln), subjectItem(ln)}

	p := ln.parsed
	if p.Amount == nil {
		return append(items, model.InvalidItem(parse.FieldCalories, "", parse.MsgMissingAmount))
	}
	return append(items, gatedItem(parse.FieldCalories, formatSignedKcal(p.Amount.Value), p.Amount.Confidence))
}
