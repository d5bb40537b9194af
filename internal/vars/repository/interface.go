package repository

import (
	"context"

	"lifelog-engine/internal/model"
)

// VariableRepository is the interface for variable persistence. A name is
// unique within its type; the same name may exist under several types.
type VariableRepository interface {
	Create(ctx context.Context, v model.Variable) (model.Variable, error)
	Update(ctx context.Context, v model.Variable) (model.Variable, error)
	// Delete removes matching variables and reports how many were removed.
	Delete(ctx context.Context, opt DeleteOptions) (int, error)
	// GetOne returns a zero-value Variable (empty ID) when nothing matches.
	GetOne(ctx context.Context, opt GetOneOptions) (model.Variable, error)
	List(ctx context.Context) ([]model.Variable, error)
	// Snapshot returns an atomic copy of the whole store for evaluation.
	Snapshot(ctx context.Context) ([]model.Variable, error)
}

// GetOneOptions selects a variable by normalized name and, optionally, type.
// With an empty Type the lookup prefers meal, then expense, then income.
type GetOneOptions struct {
	Name string
	Type model.VariableType
}

// DeleteOptions selects variables to remove. An empty Type matches every
// type carrying the name.
type DeleteOptions struct {
	Name string
	Type model.VariableType
}
