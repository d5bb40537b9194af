package http

import (
	"errors"
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/vars"
)

var errBadDefinition = errors.New("definition must look like \"name = value\"")

// --- Request DTOs ---

type defineReq struct {
	// Definition is the one-line "rent = 1200 usd" form; when set it wins
	// over the split fields.
	Definition string `json:"definition"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	Type       string `json:"type" binding:"omitempty,oneof=expense income meal"`
	Currency   string `json:"currency" binding:"omitempty,len=3"`
	Overwrite  bool   `json:"overwrite"`
}

func (r defineReq) validate() error {
	if def := strings.TrimSpace(r.Definition); def != "" {
		if !strings.Contains(def, "=") {
			return errBadDefinition
		}
		return nil
	}
	if r.Name == "" || r.Value == "" {
		return errBadDefinition
	}
	return nil
}

func (r defineReq) toInput() vars.DefineInput {
	name, value := r.Name, r.Value
	if def := strings.TrimSpace(r.Definition); def != "" {
		if lhs, rhs, ok := strings.Cut(def, "="); ok {
			name, value = strings.TrimSpace(lhs), strings.TrimSpace(rhs)
		}
	}
	return vars.DefineInput{
		Name:      name,
		Type:      model.VariableType(r.Type),
		RawValue:  value,
		Currency:  r.Currency,
		Overwrite: r.Overwrite,
	}
}

// ---

type updateReq struct {
	Name     string `json:"-"` // populated from URI param
	Value    string `json:"value"`
	Type     string `json:"type" binding:"omitempty,oneof=expense income meal"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() vars.UpdateInput {
	return vars.UpdateInput{
		Name:     r.Name,
		RawValue: r.Value,
		Type:     model.VariableType(r.Type),
		Currency: r.Currency,
	}
}

// --- Response DTOs ---

type derivedResp struct {
	Amount   *float64 `json:"amount,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	Grams    *float64 `json:"grams,omitempty"`
}

type varResp struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Value    string      `json:"value"`
	Currency string      `json:"currency,omitempty"`
	Derived  derivedResp `json:"derived"`
}

func newVarResp(v model.Variable) varResp {
	return varResp{
		ID:       v.ID,
		Name:     v.Name,
		Type:     string(v.Type),
		Value:    v.RawValue,
		Currency: v.Currency,
		Derived: derivedResp{
			Amount:   v.Derived.Amount,
			Calories: v.Derived.Calories,
			Grams:    v.Derived.Grams,
		},
	}
}

type defineResp struct {
	Variable varResp `json:"variable"`
}

func (h *handler) newDefineResp(v model.Variable) defineResp {
	return defineResp{Variable: newVarResp(v)}
}

type listResp struct {
	Variables []varResp `json:"variables"`
	Total     int       `json:"total"`
}

func (h *handler) newListResp(out []model.Variable) listResp {
	variables := make([]varResp, len(out))
	for i, v := range out {
		variables[i] = newVarResp(v)
	}
	return listResp{Variables: variables, Total: len(variables)}
}

type detailResp struct {
	Variable varResp `json:"variable"`
}

func (h *handler) newDetailResp(v model.Variable) detailResp {
	return detailResp{Variable: newVarResp(v)}
}

type updateResp struct {
	Variable varResp `json:"variable"`
}

func (h *handler) newUpdateResp(v model.Variable) updateResp {
	return updateResp{Variable: newVarResp(v)}
}
