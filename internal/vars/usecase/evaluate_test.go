package usecase_test

import (
	"context"
	"math"
	"testing"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/vars"
)

func seedVars(t *testing.T, uc vars.UseCase) {
	t.Helper()
	ctx := context.Background()
	seeds := []vars.DefineInput{
		{Name: "rent", RawValue: "1200 usd"},
		{Name: "kofte", RawValue: "350 kcal 150g"},
		{Name: "salary", Type: model.VariableIncome, RawValue: "3000 usd"},
		{Name: "espresso", RawValue: "3 eur"},
	}
	for _, s := range seeds {
		if _, err := uc.Define(ctx, s); err != nil {
			t.Fatalf("seed %q: %v", s.Name, err)
		}
	}
}

func TestEvaluateCalories(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{BaseCurrency: "USD"}

	t.Run("Signed Adjustment", func(t *testing.T) {
		uc := newVars(t, nil, 0)
		ev, err := uc.Evaluate(ctx, sc, "+100 kcal -50 kcal")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev == nil {
			t.Fatal("expected an evaluation")
		}
		if ev.Kind != vars.EvalCalorieAdjustment || ev.Total != 50 {
			t.Errorf("got %+v, want calorie_adjustment 50", ev)
		}
	})

	t.Run("Meal Variable Plus Adjustment", func(t *testing.T) {
		uc := newVars(t, nil, 0)
		seedVars(t, uc)
		ev, err := uc.Evaluate(ctx, sc, "kofte + 100 kcal")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev == nil || ev.Kind != vars.EvalCalorieAdjustment || ev.Total != 450 {
			t.Errorf("got %+v, want calorie_adjustment 450", ev)
		}
	})

	t.Run("Portion Scaling", func(t *testing.T) {
		uc := newVars(t, nil, 0)
		seedVars(t, uc)
		ev, err := uc.Evaluate(ctx, sc, "+200g kofte")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev == nil {
			t.Fatal("expected an evaluation")
		}
		want := 350.0 * 200 / 150
		if math.Abs(ev.Total-want) > 0.01 {
			t.Errorf("total = %v, want %v", ev.Total, want)
		}
	})

	t.Run("Distance Term Burns Calories", func(t *testing.T) {
		uc := newVars(t, nil, 70)
		ev, err := uc.Evaluate(ctx, sc, "+5km run")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev == nil || ev.Kind != vars.EvalCalorieAdjustment {
			t.Fatalf("got %+v, want a calorie evaluation", ev)
		}
		// 5km at the assumed 9 km/h: 9.8 MET for 33.3 min, subtracted
		if math.Abs(ev.Total-(-381.1)) > 0.5 {
			t.Errorf("total = %v, want about -381.1", ev.Total)
		}
	})
}

func TestEvaluateMoney(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{BaseCurrency: "USD"}

	t.Run("Bare Numbers Net To Income", func(t *testing.T) {
		uc := newVars(t, nil, 0)
		for _, expr := range []string{"+100 -50", "-50 +100"} {
			ev, err := uc.Evaluate(ctx, sc, expr)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", expr, err)
			}
			if ev == nil || ev.Kind != vars.EvalIncome || ev.Total != 50 || ev.Currency != "USD" {
				t.Errorf("%q: got %+v, want income 50 USD", expr, ev)
			}
		}
	})

	t.Run("Expense Variable", func(t *testing.T) {
		uc := newVars(t, nil, 0)
		seedVars(t, uc)
		ev, err := uc.Evaluate(ctx, sc, "+rent")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev == nil || ev.Kind != vars.EvalExpense || ev.Total != -1200 || ev.Currency != "USD" {
			t.Errorf("got %+v, want expense -1200 USD", ev)
		}
	})

	t.Run("Bare Number Inherits Previous Currency", func(t *testing.T) {
		uc := newVars(t, nil, 0)
		seedVars(t, uc)
		ev, err := uc.Evaluate(ctx, sc, "+rent -100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev == nil || ev.Total != -1300 || ev.Currency != "USD" {
			t.Errorf("got %+v, want -1300 USD", ev)
		}
	})

	t.Run("Cross Currency Conversion", func(t *testing.T) {
		conv := &stubConverter{rates: map[string]float64{"EUR/USD": 1.1}}
		uc := newVars(t, conv, 0)
		seedVars(t, uc)
		ev, err := uc.Evaluate(ctx, sc, "rent + espresso")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev == nil || ev.Currency != "USD" {
			t.Fatalf("got %+v, want a USD evaluation", ev)
		}
		if math.Abs(ev.Total-(-1203.3)) > 0.01 {
			t.Errorf("total = %v, want -1203.3", ev.Total)
		}
	})

	t.Run("Conversion Failure Surfaces", func(t *testing.T) {
		conv := &stubConverter{err: context.DeadlineExceeded}
		uc := newVars(t, conv, 0)
		seedVars(t, uc)
		if _, err := uc.Evaluate(ctx, sc, "rent + espresso"); err == nil {
			t.Fatal("expected a conversion error")
		}
	})
}

func TestEvaluateFallsThrough(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{BaseCurrency: "USD"}

	tests := []struct {
		name string
		text string
	}{
		{"no operators", "kofte for dinner"},
		{"unknown name", "rent + mystery"},
		{"unknown food with grams", "+200g pizza"},
		{"unknown activity", "+5km moonwalk to mars"},
		{"mixed units", "+rent +100 kcal"},
		{"dangling operator", "kofte+"},
		{"hyphenated word", "check-in at the office"},
	}
	uc := newVars(t, nil, 70)
	seedVars(t, uc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := uc.Evaluate(ctx, sc, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev != nil {
				t.Errorf("expected fall-through, got %+v", ev)
			}
		})
	}

	t.Run("missing weight skips activity", func(t *testing.T) {
		bare := newVars(t, nil, 0)
		ev, err := bare.Evaluate(ctx, sc, "+5km run")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev != nil {
			t.Errorf("expected fall-through, got %+v", ev)
		}
	})
}
