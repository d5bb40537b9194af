package usecase

import (
	"context"
	"errors"
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
	"lifelog-engine/internal/vars"
	"lifelog-engine/pkg/textnorm"
)

// variableShortcut resolves a line that is exactly a stored variable's name,
// bypassing classification. Lines carrying a sign go to the expression
// evaluator instead, so "+pizza" never reads as the bare name.
func (uc *implUseCase) variableShortcut(ctx context.Context, sc model.Scope, text string) (parse.ParseOutput, bool) {
	if strings.ContainsAny(text, "+-") {
		return parse.ParseOutput{}, false
	}
	name := textnorm.Slugify(text)
	if name == "" {
		return parse.ParseOutput{}, false
	}

	v, err := uc.vars.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, vars.ErrVariableNotFound) {
			uc.l.Warnf(ctx, "parse.variableShortcut Get %q: %v", name, err)
		}
		return parse.ParseOutput{}, false
	}

	switch v.Type {
	case model.VariableMeal:
		return uc.mealVariableOutput(v), true
	default:
		return moneyVariableOutput(v, sc), true
	}
}

// mealVariableOutput replays a stored meal: its reference portion and
// calories, no model involved.
func (uc *implUseCase) mealVariableOutput(v model.Variable) parse.ParseOutput {
	items := []model.ResultItem{
		model.ValidItem(parse.FieldIntent, string(model.IntentMeal)),
		model.ValidItem(parse.FieldSubject, v.Name),
	}
	var sources []model.CalorieSource
	if v.Derived.Grams != nil {
		items = append(items, model.ValidItem(parse.FieldQuantity, formatGrams(*v.Derived.Grams)))
	}
	if v.Derived.Calories != nil {
		items = append(items, model.ValidItem(parse.FieldCalories, formatKcal(*v.Derived.Calories)))
		sources = append(sources, model.CalorieSource{Name: v.Name, Calories: *v.Derived.Calories})
	}
	return parse.ParseOutput{
		Intent:  model.IntentMeal,
		State:   parse.StateDone,
		Items:   items,
		Sources: sources,
	}
}

// moneyVariableOutput replays a stored expense or income. Derived amounts
// are stored signed, so the value displays as entered: "-1200.00 USD" for
// an expense named rent.
func moneyVariableOutput(v model.Variable, sc model.Scope) parse.ParseOutput {
	intent := model.IntentExpense
	if v.Type == model.VariableIncome {
		intent = model.IntentIncome
	}
	items := []model.ResultItem{
		model.ValidItem(parse.FieldIntent, string(intent)),
		model.ValidItem(parse.FieldSubject, v.Name),
	}
	code := v.Currency
	if code == "" {
		code = sc.BaseCurrency
	}
	if v.Derived.Amount != nil {
		items = append(items, model.ValidItem(parse.FieldAmount, formatMoney(*v.Derived.Amount, code)))
	}
	return parse.ParseOutput{Intent: intent, State: parse.StateDone, Items: items}
}

// expressionShortcut runs the signed-expression evaluator. A nil evaluation
// falls through to classification; an evaluation error means the expression
// matched but a rate or the store was unreachable, which surfaces on the
// amount rather than failing the whole line.
func (uc *implUseCase) expressionShortcut(ctx context.Context, sc model.Scope, text string) (parse.ParseOutput, bool) {
	eval, err := uc.vars.Evaluate(ctx, sc, text)
	if err != nil {
		uc.l.Warnf(ctx, "parse.expressionShortcut Evaluate: %v", err)
		items := []model.ResultItem{
			model.ValidItem(parse.FieldIntent, string(model.IntentNone)),
			model.InvalidItem(parse.FieldAmount, "", parse.MsgNoConnection),
		}
		return parse.ParseOutput{Intent: model.IntentNone, State: parse.StateFailed, Items: items}, true
	}
	if eval == nil {
		return parse.ParseOutput{}, false
	}

	if eval.Kind == vars.EvalCalorieAdjustment {
		items := []model.ResultItem{
			model.ValidItem(parse.FieldIntent, string(model.IntentCalorieAdjustment)),
			model.ValidItem(parse.FieldCalories, formatSignedKcal(eval.Total)),
		}
		return parse.ParseOutput{Intent: model.IntentCalorieAdjustment, State: parse.StateDone, Items: items}, true
	}

	intent := model.IntentIncome
	if eval.Kind == vars.EvalExpense {
		intent = model.IntentExpense
	}
	items := []model.ResultItem{
		model.ValidItem(parse.FieldIntent, string(intent)),
		model.ValidItem(parse.FieldAmount, formatMoney(eval.Total, eval.Currency)),
	}
	return parse.ParseOutput{Intent: intent, State: parse.StateDone, Items: items}, true
}
