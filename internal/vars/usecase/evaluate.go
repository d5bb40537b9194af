package usecase

import (
	"context"
	"fmt"
	"strings"

	"lifelog-engine/internal/currency"
	"lifelog-engine/internal/model"
	"lifelog-engine/internal/units"
	"lifelog-engine/internal/vars"
	"lifelog-engine/pkg/textnorm"
)

type termKind int

const (
	termMoney termKind = iota
	termCalories
)

// termValue is one resolved expression term. value is signed, already
// multiplied by the term's operator.
type termValue struct {
	raw         string
	kind        termKind
	value       float64
	currency    string // money terms; empty means the result currency
	explicitCur bool
}

// Evaluate runs the signed-expression evaluator. It activates only when the
// text carries at least one + or - operator, and resolves terms against an
// atomic snapshot of the store. All or nothing: one unresolvable term makes
// the whole text fall through to normal classification (nil, nil).
func (uc *implUseCase) Evaluate(ctx context.Context, sc model.Scope, text string) (*vars.Evaluation, error) {
	ops, terms := splitExpression(text)
	if len(terms) == 0 {
		return nil, nil
	}

	snapshot, err := uc.repo.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "vars.Evaluate Snapshot: %v", err)
		return nil, err
	}
	idx := indexVariables(snapshot)

	resolved := make([]termValue, 0, len(terms))
	var prev *termValue
	for i, term := range terms {
		sign := 1.0
		if ops[i] == '-' {
			sign = -1
		}
		tv, ok := uc.resolveTerm(ctx, idx, term, sign, prev)
		if !ok {
			return nil, nil
		}
		resolved = append(resolved, tv)
		prev = &resolved[len(resolved)-1]
	}

	// one unit per expression: mixing calories and money resolves nothing
	kind := resolved[0].kind
	for _, tv := range resolved {
		if tv.kind != kind {
			return nil, nil
		}
	}

	if kind == termCalories {
		out := &vars.Evaluation{Kind: vars.EvalCalorieAdjustment}
		for _, tv := range resolved {
			out.Terms = append(out.Terms, vars.EvalTerm{Raw: tv.raw, Value: tv.value})
			out.Total += tv.value
		}
		return out, nil
	}

	// money: the first explicitly detected currency wins, else the base
	resultCur := ""
	for _, tv := range resolved {
		if tv.explicitCur {
			resultCur = tv.currency
			break
		}
	}
	if resultCur == "" {
		resultCur = sc.BaseCurrency
	}
	if resultCur == "" {
		resultCur = vars.DefaultBaseCurrency
	}

	out := &vars.Evaluation{Currency: resultCur}
	for _, tv := range resolved {
		v := tv.value
		if tv.currency != "" && tv.currency != resultCur {
			v, err = uc.converter.Convert(ctx, v, tv.currency, resultCur)
			if err != nil {
				uc.l.Warnf(ctx, "vars.Evaluate convert %s->%s: %v", tv.currency, resultCur, err)
				return nil, fmt.Errorf("evaluate %q: %w", tv.raw, err)
			}
		}
		out.Terms = append(out.Terms, vars.EvalTerm{Raw: tv.raw, Value: v})
		out.Total += v
	}
	if out.Total < 0 {
		out.Kind = vars.EvalExpense
	} else {
		out.Kind = vars.EvalIncome
	}
	return out, nil
}

// splitExpression normalizes the text to start with an explicit sign and
// splits it into (operator, term) pairs in a single scan.
func splitExpression(text string) ([]byte, []string) {
	s := strings.TrimSpace(text)
	if s == "" || !strings.ContainsAny(s, "+-") {
		return nil, nil
	}
	if s[0] != '+' && s[0] != '-' {
		s = "+" + s
	}

	var ops []byte
	var terms []string
	var b strings.Builder
	op := byte(0)
	flush := func() {
		if op != 0 {
			terms = append(terms, strings.TrimSpace(b.String()))
			ops = append(ops, op)
		}
		b.Reset()
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			flush()
			op = s[i]
			continue
		}
		b.WriteByte(s[i])
	}
	flush()
	return ops, terms
}

type varIndex map[model.VariableType]map[string]model.Variable

var lookupOrder = []model.VariableType{
	model.VariableMeal,
	model.VariableExpense,
	model.VariableIncome,
}

func indexVariables(list []model.Variable) varIndex {
	idx := varIndex{}
	for _, v := range list {
		bucket, ok := idx[v.Type]
		if !ok {
			bucket = map[string]model.Variable{}
			idx[v.Type] = bucket
		}
		bucket[v.Name] = v
	}
	return idx
}

func (idx varIndex) lookup(name string) (model.Variable, bool) {
	if name == "" {
		return model.Variable{}, false
	}
	for _, typ := range lookupOrder {
		if v, ok := idx[typ][name]; ok {
			return v, true
		}
	}
	return model.Variable{}, false
}

// resolveTerm turns one term into its signed contribution. A false return
// aborts the whole expression.
func (uc *implUseCase) resolveTerm(ctx context.Context, idx varIndex, raw string, sign float64, prev *termValue) (termValue, bool) {
	if raw == "" {
		return termValue{}, false
	}

	grams, gramsMatch, hasGrams := units.GramsFromText(raw)
	distKm, distMatch, hasDist := units.DistanceFromText(raw)

	if v, ok := idx.lookup(cleanTermName(raw, gramsMatch, distMatch)); ok {
		switch v.Type {
		case model.VariableMeal:
			if v.Derived.Calories == nil {
				return termValue{}, false
			}
			cal := *v.Derived.Calories
			// scale by portion when both sides know their grams
			if hasGrams && v.Derived.Grams != nil && *v.Derived.Grams > 0 {
				cal = cal * grams / *v.Derived.Grams
			}
			return termValue{raw: raw, kind: termCalories, value: sign * cal}, true
		default:
			if v.Derived.Amount == nil {
				return termValue{}, false
			}
			return termValue{
				raw:         raw,
				kind:        termMoney,
				value:       sign * *v.Derived.Amount,
				currency:    v.Currency,
				explicitCur: v.Currency != "",
			}, true
		}
	}

	if hasGrams {
		// unknown food with an explicit weight: the meal handler owns it,
		// do not read it as money
		return termValue{}, false
	}
	if hasDist {
		burned, ok := uc.activityBurn(ctx, raw, distMatch, distKm)
		if !ok {
			return termValue{}, false
		}
		// activity burns intake regardless of the written operator
		return termValue{raw: raw, kind: termCalories, value: -burned}, true
	}

	if kcal, _, ok := units.CaloriesFromText(raw); ok {
		return termValue{raw: raw, kind: termCalories, value: sign * kcal}, true
	}
	amt, ok := currency.ParseAmount(raw)
	if !ok {
		return termValue{}, false
	}
	if cur, found := currency.Detect(raw); found {
		return termValue{raw: raw, kind: termMoney, value: sign * amt, currency: cur, explicitCur: true}, true
	}
	if prev != nil {
		// a bare number inherits the unit of the term before it
		return termValue{raw: raw, kind: prev.kind, value: sign * amt, currency: prev.currency}, true
	}
	return termValue{raw: raw, kind: termMoney, value: sign * amt}, true
}

// activityBurn converts a distance term into burned calories. Unknown
// activity names and a missing weight both leave the term unresolved.
func (uc *implUseCase) activityBurn(ctx context.Context, raw, distMatch string, distKm float64) (float64, bool) {
	name := strings.TrimSpace(strings.Replace(raw, distMatch, " ", 1))
	if name == "" {
		return 0, false
	}
	prof, err := uc.profile.Get(ctx)
	if err != nil {
		return 0, false
	}
	res, err := units.Calories(units.ActivityInput{Name: name, DistanceKm: &distKm}, prof)
	if err != nil {
		return 0, false
	}
	return res.Calories, true
}

func cleanTermName(raw, gramsMatch, distMatch string) string {
	s := raw
	if gramsMatch != "" {
		s = strings.Replace(s, gramsMatch, " ", 1)
	}
	if distMatch != "" {
		s = strings.Replace(s, distMatch, " ", 1)
	}
	return textnorm.Slugify(s)
}
