package vars

import (
	"context"

	"lifelog-engine/internal/model"
)

// UseCase defines the business logic interface for the variable store.
type UseCase interface {
	// Define creates a variable, deriving numeric values from its raw value
	// text. With Overwrite set an existing variable is replaced in place.
	Define(ctx context.Context, input DefineInput) (model.Variable, error)

	// Update rewrites an existing variable's value and optionally its type.
	Update(ctx context.Context, input UpdateInput) (model.Variable, error)

	// Delete removes every variable bearing the name, across types.
	Delete(ctx context.Context, name string) error

	// List returns all variables sorted by type then name.
	List(ctx context.Context) ([]model.Variable, error)

	// Get resolves a name with the evaluator's priority: meal first, then
	// expense, then income.
	Get(ctx context.Context, name string) (model.Variable, error)

	// Evaluate runs the signed-expression evaluator over text. A nil
	// Evaluation with a nil error means the text is not an expression and
	// should fall through to classification. A non-nil error means the
	// expression matched but could not be computed.
	Evaluate(ctx context.Context, sc model.Scope, text string) (*Evaluation, error)
}
