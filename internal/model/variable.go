package model

// VariableType separates the namespaces a variable can live in. Lookup
// order by the evaluator is meal, then expense, then income.
type VariableType string

const (
	VariableExpense VariableType = "expense"
	VariableIncome  VariableType = "income"
	VariableMeal    VariableType = "meal"
)

// Variable is a user-defined named quantity. Identity is the normalized
// lowercase name within its type. The core only ever reads an immutable
// snapshot; mutation happens through the store's own surface.
type Variable struct {
	ID       string
	Name     string // normalized lowercase
	Type     VariableType
	RawValue string // value text as the user entered it
	Currency string // ISO code, money variables only
	Derived  DerivedValue
}

// DerivedValue carries the numeric readings derived from RawValue.
type DerivedValue struct {
	Amount   *float64 // money amount
	Calories *float64
	Grams    *float64 // reference portion for meal variables
}
