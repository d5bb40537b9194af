package memory

import (
	"sync"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/vars/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	byRef map[model.VariableType]map[string]model.Variable
}

var _ repository.VariableRepository = (*implRepository)(nil)

// New creates an in-memory variable repository.
func New() repository.VariableRepository {
	return &implRepository{
		byRef: map[model.VariableType]map[string]model.Variable{
			model.VariableMeal:    {},
			model.VariableExpense: {},
			model.VariableIncome:  {},
		},
	}
}
