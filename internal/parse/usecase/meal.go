package usecase

import (
	"context"
	"errors"
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
	"lifelog-engine/internal/units"
	"lifelog-engine/internal/vars"
	"lifelog-engine/pkg/objectext"
	"lifelog-engine/pkg/textnorm"
)

// mealSub is one resolved sub-item of a meal line.
type mealSub struct {
	name      string
	grams     *float64
	gramsConf *float64
	calories  *float64
	calConf   *float64 // nil means deterministic
	source    *model.CalorieSource
}

// handleMeal splits the line into sub-items and resolves each one: a stored
// variable first, then a calorie figure stated in the text, then the model's
// estimate. Explicit grams scale whichever source answered. Multi-sub lines
// also emit an aggregate total over their trusted calorie figures.
func (uc *implUseCase) handleMeal(ctx context.Context, ln *line) ([]model.ResultItem, []model.CalorieSource) {
	items := []model.ResultItem{uc.intentItem(ln)}
	var sources []model.CalorieSource

	subs := splitSubjects(ln.text)
	var total float64
	counted := 0
	for i, seg := range subs {
		sub := uc.resolveMealSub(ctx, ln, seg, i)
		items = append(items, model.ValidItem(parse.FieldSubject, sub.name))
		if sub.grams != nil {
			items = append(items, gatedItem(parse.FieldQuantity, formatGrams(*sub.grams), sub.gramsConf))
		}
		if sub.calories == nil {
			continue
		}
		item := gatedItem(parse.FieldCalories, formatKcal(*sub.calories), sub.calConf)
		items = append(items, item)
		if item.IsValid {
			total += *sub.calories
			counted++
		}
		if sub.source != nil {
			sources = append(sources, *sub.source)
		}
	}

	if len(subs) > 1 && counted > 0 {
		items = append(items, model.ValidItem(parse.FieldTotalCalories, formatKcal(total)))
	}

	p := ln.parsed
	if p.MealIsMenu != nil && p.MealIsMenu.Value && classifyConfidence(p.MealIsMenu.Confidence, ConfidenceThreshold) {
		items = append(items, model.ValidItem(parse.FieldMenu, "true"))
	}
	return items, sources
}

// splitSubjects cuts a multi-subject line on the separator; a line without
// one comes back whole.
func splitSubjects(text string) []string {
	parts := strings.Split(text, SubjectSeparator)
	subs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			subs = append(subs, p)
		}
	}
	if len(subs) == 0 {
		subs = append(subs, strings.TrimSpace(text))
	}
	return subs
}

// resolveMealSub works out one sub-item's name, portion and calories.
func (uc *implUseCase) resolveMealSub(ctx context.Context, ln *line, seg string, idx int) mealSub {
	var sub mealSub

	grams, gramsMatch, hasGrams := units.GramsFromText(seg)
	kcal, kcalMatch, hasKcal := units.CaloriesFromText(seg)

	cleaned := seg
	for _, m := range []string{gramsMatch, kcalMatch} {
		if m != "" {
			cleaned = strings.Replace(cleaned, m, " ", 1)
		}
	}
	detName := objectext.Extract(cleaned, "", ln.sanitized)
	wireName := textnorm.Slugify(wireItemName(ln, idx))
	// the model's name usually reads cleaner ("pizza" for "ate pizza"); the
	// deterministic residue covers degraded lines
	sub.name = wireName
	if sub.name == "" {
		sub.name = detName
	}
	if hasGrams {
		sub.grams = &grams
	}

	if v, ok := uc.mealVariable(ctx, detName, wireName); ok {
		sub.name = v.Name
		value := *v.Derived.Calories
		if hasGrams && v.Derived.Grams != nil && *v.Derived.Grams > 0 {
			value = value * grams / *v.Derived.Grams
		}
		sub.calories = &value
		sub.source = &model.CalorieSource{Name: v.Name, Calories: value}
		if sub.grams == nil {
			sub.grams = v.Derived.Grams
		}
		return sub
	}

	if hasKcal {
		sub.calories = &kcal
		sub.source = &model.CalorieSource{Name: sub.name, Calories: kcal}
		return sub
	}

	wi := wireItem(ln, idx)
	if wi == nil || wi.Calories == nil {
		return sub
	}
	value := *wi.Calories
	if hasGrams && wi.Grams != nil && *wi.Grams > 0 {
		value = value * grams / *wi.Grams
	}
	conf := wireConfidence(ln.wire)
	sub.calories = &value
	sub.calConf = conf
	if sub.grams == nil && wi.Grams != nil {
		sub.grams = wi.Grams
		sub.gramsConf = conf
	}
	sub.source = wireSource(ln.wire, value)
	return sub
}

// mealVariable looks the candidate names up in the store, keeping only meal
// variables that actually carry calories.
func (uc *implUseCase) mealVariable(ctx context.Context, names ...string) (model.Variable, bool) {
	tried := make(map[string]bool, len(names))
	for _, n := range names {
		slug := textnorm.Slugify(n)
		if slug == "" || tried[slug] {
			continue
		}
		tried[slug] = true
		v, err := uc.vars.Get(ctx, slug)
		if err != nil {
			if !errors.Is(err, vars.ErrVariableNotFound) {
				uc.l.Warnf(ctx, "parse.mealVariable Get %q: %v", slug, err)
			}
			continue
		}
		if v.Type == model.VariableMeal && v.Derived.Calories != nil {
			return v, true
		}
	}
	return model.Variable{}, false
}

func wireItem(ln *line, idx int) *mealItemWire {
	if ln.wire == nil || idx >= len(ln.wire.Items) {
		return nil
	}
	return &ln.wire.Items[idx]
}

func wireItemName(ln *line, idx int) string {
	if wi := wireItem(ln, idx); wi != nil && wi.Name != "" {
		return wi.Name
	}
	if ln.wire != nil {
		return ln.wire.Object
	}
	return ""
}

// wireSource names where a model-estimated calorie figure came from.
func wireSource(w *extractionWire, calories float64) *model.CalorieSource {
	name := w.SourceName
	if name == "" {
		name = "model estimate"
	}
	src := &model.CalorieSource{Name: name, Calories: calories}
	if w.SourceURL != "" {
		u := w.SourceURL
		src.URL = &u
	}
	return src
}
