package usecase

import (
	"context"
	"testing"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
)

func TestParseExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Detected Currency", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "expense", "confidence": 0.9}`},
			extract:  &stubProvider{text: `{"object": "taxi", "amount": 150, "currency": "usd", "confidence": 0.9}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "taxi 150 usd"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.Intent != model.IntentExpense {
			t.Errorf("expected expense, got %s", out.Intent)
		}
		wantItem(t, out.Items, parse.FieldSubject, "taxi")
		wantItem(t, out.Items, parse.FieldAmount, "-150.00 USD")
	})

	t.Run("Base Currency Fallback", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "expense", "confidence": 0.9}`},
			extract:  &stubProvider{text: `{"object": "lunch", "amount": 45.5, "confidence": 0.9}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "lunch 45,50", BaseCurrency: "eur"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		wantItem(t, out.Items, parse.FieldAmount, "-45.50 EUR")
	})

	t.Run("Deterministic Amount When Model Degraded", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "expense", "confidence": 0.9}`},
			extract:  &stubProvider{text: `cause_bad_json {{{`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "taxi 150"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		it, ok := findItem(out.Items, parse.FieldAmount)
		if !ok {
			t.Fatalf("amount item missing from %+v", out.Items)
		}
		if it.Value != "-150.00 USD" {
			t.Errorf("expected the amount read from the text, got %q", it.Value)
		}
	})

	t.Run("Missing Amount", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "expense", "confidence": 0.9}`},
			extract:  &stubProvider{text: `{"object": "groceries", "confidence": 0.9}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "bought groceries"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		wantInvalidItem(t, out.Items, parse.FieldAmount, parse.MsgMissingAmount)
	})
}

func TestParseIncome(t *testing.T) {
	h := &harness{
		classify: &stubProvider{text: `{"intent": "income", "confidence": 0.95}`},
		extract:  &stubProvider{text: `{"object": "salary", "amount": 3000, "currency": "USD", "confidence": 0.95}`},
	}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "salary came in 3000 usd"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.Intent != model.IntentIncome {
		t.Errorf("expected income, got %s", out.Intent)
	}
	wantItem(t, out.Items, parse.FieldSubject, "salary")
	wantItem(t, out.Items, parse.FieldAmount, "3000.00 USD")
}

func TestParseAdjustment(t *testing.T) {
	h := &harness{
		classify: &stubProvider{text: `{"intent": "calorie_adjustment", "confidence": 0.9}`},
		extract:  &stubProvider{text: `{"object": "late snack", "calories": 150, "confidence": 0.9}`},
	}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "ate a late snack, around 150 kcal extra"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	wantItem(t, out.Items, parse.FieldCalories, "+150 kcal")
}
