package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/vars/repository"
)

// lookupOrder is the type priority for untyped lookups.
var lookupOrder = []model.VariableType{
	model.VariableMeal,
	model.VariableExpense,
	model.VariableIncome,
}

// variableID derives a stable ID from type and name, so redefining a
// variable keeps its identity.
func variableID(typ model.VariableType, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(string(typ)+":"+name)).String()
}

func (r *implRepository) Create(ctx context.Context, v model.Variable) (model.Variable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.byRef[v.Type]
	if !ok {
		return model.Variable{}, fmt.Errorf("unknown variable type %q", v.Type)
	}
	v.ID = variableID(v.Type, v.Name)
	bucket[v.Name] = v
	return v, nil
}

func (r *implRepository) Update(ctx context.Context, v model.Variable) (model.Variable, error) {
	// identical to Create for a keyed map; kept separate so callers state
	// their intent
	return r.Create(ctx, v)
}

func (r *implRepository) Delete(ctx context.Context, opt repository.DeleteOptions) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for typ, bucket := range r.byRef {
		if opt.Type != "" && typ != opt.Type {
			continue
		}
		if _, ok := bucket[opt.Name]; ok {
			delete(bucket, opt.Name)
			removed++
		}
	}
	return removed, nil
}

func (r *implRepository) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.Variable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if opt.Type != "" {
		return r.byRef[opt.Type][opt.Name], nil
	}
	for _, typ := range lookupOrder {
		if v, ok := r.byRef[typ][opt.Name]; ok {
			return v, nil
		}
	}
	return model.Variable{}, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Variable, error) {
	out, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *implRepository) Snapshot(ctx context.Context) ([]model.Variable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Variable, 0)
	for _, bucket := range r.byRef {
		for _, v := range bucket {
			out = append(out, v)
		}
	}
	return out, nil
}
