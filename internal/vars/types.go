package vars

import "lifelog-engine/internal/model"

// --- UseCase Inputs ---

type DefineInput struct {
	Name      string
	Type      model.VariableType // empty: inferred from the value text
	RawValue  string
	Currency  string // optional explicit ISO code
	Overwrite bool
}

type UpdateInput struct {
	Name     string
	RawValue string
	Type     model.VariableType // empty: keep current
	Currency string             // empty: re-derive from the value text
}

// --- Evaluation ---

// EvalKind tags what an evaluated expression amounts to.
type EvalKind string

const (
	EvalCalorieAdjustment EvalKind = "calorie_adjustment"
	EvalExpense           EvalKind = "expense"
	EvalIncome            EvalKind = "income"
)

// EvalTerm is one resolved term with its signed contribution, expressed in
// the evaluation's result unit (kcal or the result currency).
type EvalTerm struct {
	Raw   string
	Value float64
}

// Evaluation is the outcome of a fully resolved expression. Either a signed
// calorie total or a signed money total, never both.
type Evaluation struct {
	Kind     EvalKind
	Total    float64
	Currency string // money results only
	Terms    []EvalTerm
}
