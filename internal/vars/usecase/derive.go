package usecase

import (
	"fmt"
	"math"
	"strings"

	"lifelog-engine/internal/currency"
	"lifelog-engine/internal/model"
	"lifelog-engine/internal/units"
	"lifelog-engine/internal/vars"
)

// deriveValue reads the numeric content of a variable's raw value text and
// infers the variable type when none was given. Money amounts are stored
// signed: negative for expenses, positive for income, so the evaluator and
// the exact-name shortcut can sum them directly.
func deriveValue(typ model.VariableType, raw, explicitCurrency string) (model.VariableType, model.DerivedValue, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return typ, model.DerivedValue{}, "", vars.ErrUnreadableValue
	}

	kcal, _, hasKcal := units.CaloriesFromText(raw)
	grams, _, hasGrams := units.GramsFromText(raw)
	cur, hasCur := currency.Detect(raw)
	if explicitCurrency != "" {
		if norm, ok := currency.Normalize(explicitCurrency); ok {
			cur, hasCur = norm, true
		}
	}

	if typ == "" {
		switch {
		case hasKcal || (hasGrams && !hasCur):
			typ = model.VariableMeal
		default:
			typ = model.VariableExpense
		}
	}

	switch typ {
	case model.VariableMeal:
		if !hasKcal && !hasGrams {
			return typ, model.DerivedValue{}, "", vars.ErrUnreadableValue
		}
		var d model.DerivedValue
		if hasKcal {
			d.Calories = &kcal
		}
		if hasGrams {
			d.Grams = &grams
		}
		return typ, d, "", nil

	case model.VariableExpense, model.VariableIncome:
		amt, ok := currency.ParseAmount(raw)
		if !ok {
			return typ, model.DerivedValue{}, "", vars.ErrUnreadableValue
		}
		amt = math.Abs(amt)
		if typ == model.VariableExpense {
			amt = -amt
		}
		return typ, model.DerivedValue{Amount: &amt}, cur, nil

	default:
		return typ, model.DerivedValue{}, "", fmt.Errorf("unknown variable type %q", typ)
	}
}
