package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/vars"
	varsHTTP "lifelog-engine/internal/vars/delivery/http"
	"lifelog-engine/pkg/log"
	"lifelog-engine/pkg/response"
)

type stubUseCase struct {
	variable    model.Variable
	list        []model.Variable
	err         error
	defineInput vars.DefineInput
	updateInput vars.UpdateInput
	deletedName string
}

func (s *stubUseCase) Define(ctx context.Context, input vars.DefineInput) (model.Variable, error) {
	s.defineInput = input
	return s.variable, s.err
}

func (s *stubUseCase) Update(ctx context.Context, input vars.UpdateInput) (model.Variable, error) {
	s.updateInput = input
	return s.variable, s.err
}

func (s *stubUseCase) Delete(ctx context.Context, name string) error {
	s.deletedName = name
	return s.err
}

func (s *stubUseCase) List(ctx context.Context) ([]model.Variable, error) {
	return s.list, s.err
}

func (s *stubUseCase) Get(ctx context.Context, name string) (model.Variable, error) {
	return s.variable, s.err
}

func (s *stubUseCase) Evaluate(ctx context.Context, sc model.Scope, text string) (*vars.Evaluation, error) {
	return nil, nil
}

func newRouter(uc vars.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := varsHTTP.New(log.NewNop(), uc)
	varsHTTP.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 { return &v }

func TestDefine(t *testing.T) {
	t.Run("From Definition Line", func(t *testing.T) {
		uc := &stubUseCase{variable: model.Variable{
			ID: "1", Name: "rent", Type: model.VariableExpense,
			RawValue: "1200 usd", Currency: "USD",
			Derived: model.DerivedValue{Amount: floatPtr(-1200)},
		}}
		r := newRouter(uc)

		w := do(t, r, http.MethodPost, "/api/v1/variables", `{"definition": "rent = 1200 usd"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.defineInput.Name != "rent" || uc.defineInput.RawValue != "1200 usd" {
			t.Errorf("definition not split, got %+v", uc.defineInput)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		variable, _ := data["variable"].(map[string]interface{})
		if variable["name"] != "rent" || variable["type"] != "expense" {
			t.Errorf("unexpected variable payload: %v", variable)
		}
	})

	t.Run("Split Fields", func(t *testing.T) {
		uc := &stubUseCase{variable: model.Variable{ID: "1", Name: "pizza", Type: model.VariableMeal}}
		r := newRouter(uc)

		w := do(t, r, http.MethodPost, "/api/v1/variables",
			`{"name": "pizza", "value": "1100 kcal / 450g", "type": "meal", "overwrite": true}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		in := uc.defineInput
		if in.Name != "pizza" || in.Type != model.VariableMeal || !in.Overwrite {
			t.Errorf("unexpected input: %+v", in)
		}
	})

	t.Run("Rejects Empty Body", func(t *testing.T) {
		r := newRouter(&stubUseCase{})

		w := do(t, r, http.MethodPost, "/api/v1/variables", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Rejects Definition Without Equals", func(t *testing.T) {
		r := newRouter(&stubUseCase{})

		w := do(t, r, http.MethodPost, "/api/v1/variables", `{"definition": "rent 1200 usd"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Conflict", func(t *testing.T) {
		uc := &stubUseCase{err: vars.ErrVariableExists}
		r := newRouter(uc)

		w := do(t, r, http.MethodPost, "/api/v1/variables", `{"definition": "rent = 1200 usd"}`)

		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := &stubUseCase{err: vars.ErrVariableNotFound}
		r := newRouter(uc)

		w := do(t, r, http.MethodGet, "/api/v1/variables/ghost", "")

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Name From Path", func(t *testing.T) {
		uc := &stubUseCase{variable: model.Variable{ID: "1", Name: "rent", Type: model.VariableExpense}}
		r := newRouter(uc)

		w := do(t, r, http.MethodPut, "/api/v1/variables/rent", `{"value": "1300 usd"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.updateInput.Name != "rent" || uc.updateInput.RawValue != "1300 usd" {
			t.Errorf("unexpected input: %+v", uc.updateInput)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newRouter(uc)

		w := do(t, r, http.MethodDelete, "/api/v1/variables/rent", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.deletedName != "rent" {
			t.Errorf("expected delete for rent, got %q", uc.deletedName)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := &stubUseCase{err: vars.ErrVariableNotFound}
		r := newRouter(uc)

		w := do(t, r, http.MethodDelete, "/api/v1/variables/ghost", "")

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestList(t *testing.T) {
	uc := &stubUseCase{list: []model.Variable{
		{ID: "1", Name: "pizza", Type: model.VariableMeal},
		{ID: "2", Name: "rent", Type: model.VariableExpense},
	}}
	r := newRouter(uc)

	w := do(t, r, http.MethodGet, "/api/v1/variables", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]interface{})
	if total, _ := data["total"].(float64); total != 2 {
		t.Errorf("expected total 2, got %v", data["total"])
	}
	variables, _ := data["variables"].([]interface{})
	if len(variables) != 2 {
		t.Errorf("expected 2 variables, got %v", data["variables"])
	}
}
