package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
	"lifelog-engine/internal/profile"
	"lifelog-engine/internal/router"
	"lifelog-engine/internal/vars"
	"lifelog-engine/pkg/datemath"
	"lifelog-engine/pkg/llm"
	"lifelog-engine/pkg/log"
	"lifelog-engine/pkg/translate"
)

// Monday, 2025-03-10 14:30 UTC.
var testNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

type stubProvider struct {
	text  string
	err   error
	calls int
}

func (s *stubProvider) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Text: s.text, ProviderName: "stub", ModelName: "stub-model"}, nil
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }

type fakeVars struct {
	byName     map[string]model.Variable
	eval       *vars.Evaluation
	evalErr    error
	evalCalled bool
}

func (f *fakeVars) Define(ctx context.Context, input vars.DefineInput) (model.Variable, error) {
	return model.Variable{}, nil
}

func (f *fakeVars) Update(ctx context.Context, input vars.UpdateInput) (model.Variable, error) {
	return model.Variable{}, nil
}

func (f *fakeVars) Delete(ctx context.Context, name string) error { return nil }

func (f *fakeVars) List(ctx context.Context) ([]model.Variable, error) { return nil, nil }

func (f *fakeVars) Get(ctx context.Context, name string) (model.Variable, error) {
	if v, ok := f.byName[name]; ok {
		return v, nil
	}
	return model.Variable{}, vars.ErrVariableNotFound
}

func (f *fakeVars) Evaluate(ctx context.Context, sc model.Scope, text string) (*vars.Evaluation, error) {
	f.evalCalled = true
	if f.evalErr != nil {
		return nil, f.evalErr
	}
	return f.eval, nil
}

type fakeProfile struct {
	prof model.Profile
	err  error
}

func (f *fakeProfile) Get(ctx context.Context) (model.Profile, error) { return f.prof, f.err }

func (f *fakeProfile) Update(ctx context.Context, input profile.UpdateInput) (model.Profile, error) {
	return f.prof, nil
}

type fakeTranslator struct {
	lang string
	text string
	err  error
}

func (f *fakeTranslator) Translate(ctx context.Context, req translate.TranslateRequest) (*translate.Translation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &translate.Translation{Text: f.text, DetectedSource: f.lang}, nil
}

func (f *fakeTranslator) Detect(ctx context.Context, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.lang, nil
}

// harness bundles the collaborator doubles behind one usecase.
type harness struct {
	classify   *stubProvider
	extract    *stubProvider
	vars       *fakeVars
	profile    *fakeProfile
	translator parse.Translator
}

func (h *harness) useCase(t *testing.T) parse.UseCase {
	t.Helper()
	nop := log.NewNop()

	if h.classify == nil {
		h.classify = &stubProvider{text: `{"intent": "none", "confidence": 0.9}`}
	}
	if h.extract == nil {
		h.extract = &stubProvider{text: `{}`}
	}
	if h.vars == nil {
		h.vars = &fakeVars{}
	}
	if h.profile == nil {
		h.profile = &fakeProfile{}
	}

	classifyMgr := llm.NewManager([]llm.Provider{h.classify}, &llm.Config{RetryAttempts: 1}, nop)
	extractMgr := llm.NewManager([]llm.Provider{h.extract}, &llm.Config{RetryAttempts: 1}, nop)

	san, err := datemath.NewSanitizer(datemath.Config{Timezone: "UTC", Now: func() time.Time { return testNow }})
	if err != nil {
		t.Fatalf("NewSanitizer failed: %v", err)
	}

	return New(nop, router.New(classifyMgr, nop), extractMgr, h.translator, san, h.vars, h.profile)
}

func findItem(items []model.ResultItem, field string) (model.ResultItem, bool) {
	for _, it := range items {
		if it.Field == field {
			return it, true
		}
	}
	return model.ResultItem{}, false
}

func itemValues(items []model.ResultItem, field string) []string {
	var out []string
	for _, it := range items {
		if it.Field == field {
			out = append(out, it.Value)
		}
	}
	return out
}

func wantItem(t *testing.T, items []model.ResultItem, field, value string) {
	t.Helper()
	it, ok := findItem(items, field)
	if !ok {
		t.Fatalf("item %q missing from %+v", field, items)
	}
	if !it.IsValid {
		t.Fatalf("item %q not valid: %+v", field, it)
	}
	if it.Value != value {
		t.Errorf("item %q: expected %q, got %q", field, value, it.Value)
	}
}

func wantInvalidItem(t *testing.T, items []model.ResultItem, field, message string) model.ResultItem {
	t.Helper()
	it, ok := findItem(items, field)
	if !ok {
		t.Fatalf("item %q missing from %+v", field, items)
	}
	if it.IsValid {
		t.Fatalf("item %q unexpectedly valid: %+v", field, it)
	}
	if it.ErrorMessage == nil || *it.ErrorMessage != message {
		t.Errorf("item %q: expected message %q, got %+v", field, message, it.ErrorMessage)
	}
	return it
}

func TestParseEmptyInput(t *testing.T) {
	uc := (&harness{}).useCase(t)

	_, err := uc.Parse(context.Background(), parse.ParseInput{Text: "   "})
	if !errors.Is(err, parse.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestParseVariableShortcut(t *testing.T) {
	ctx := context.Background()

	t.Run("Expense Variable", func(t *testing.T) {
		amount := -1200.0
		h := &harness{
			classify: &stubProvider{err: errors.New("must not be called")},
			vars: &fakeVars{byName: map[string]model.Variable{
				"rent": {Name: "rent", Type: model.VariableExpense, Currency: "USD", RawValue: "1200 usd",
					Derived: model.DerivedValue{Amount: &amount}},
			}},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "rent"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.Intent != model.IntentExpense {
			t.Errorf("expected expense, got %s", out.Intent)
		}
		if out.State != parse.StateDone {
			t.Errorf("expected done, got %s", out.State)
		}
		wantItem(t, out.Items, parse.FieldIntent, "expense")
		wantItem(t, out.Items, parse.FieldSubject, "rent")
		wantItem(t, out.Items, parse.FieldAmount, "-1200.00 USD")
		if h.classify.calls != 0 {
			t.Errorf("classifier called %d times for a shortcut line", h.classify.calls)
		}
	})

	t.Run("Meal Variable", func(t *testing.T) {
		cal, grams := 1100.0, 450.0
		h := &harness{
			classify: &stubProvider{err: errors.New("must not be called")},
			vars: &fakeVars{byName: map[string]model.Variable{
				"pizza": {Name: "pizza", Type: model.VariableMeal, RawValue: "450g 1100 kcal",
					Derived: model.DerivedValue{Calories: &cal, Grams: &grams}},
			}},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "Pizza"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.Intent != model.IntentMeal {
			t.Errorf("expected meal, got %s", out.Intent)
		}
		wantItem(t, out.Items, parse.FieldQuantity, "450g")
		wantItem(t, out.Items, parse.FieldCalories, "1100 kcal")
		if len(out.Sources) != 1 || out.Sources[0].Name != "pizza" {
			t.Errorf("expected pizza source, got %+v", out.Sources)
		}
	})

	t.Run("Signed Line Skips Name Lookup", func(t *testing.T) {
		cal := 500.0
		h := &harness{
			vars: &fakeVars{
				byName: map[string]model.Variable{
					"pizza": {Name: "pizza", Type: model.VariableMeal, Derived: model.DerivedValue{Calories: &cal}},
				},
				eval: &vars.Evaluation{Kind: vars.EvalCalorieAdjustment, Total: 500},
			},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "+pizza"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if !h.vars.evalCalled {
			t.Error("expected the evaluator to handle a signed line")
		}
		if out.Intent != model.IntentCalorieAdjustment {
			t.Errorf("expected calorie_adjustment, got %s", out.Intent)
		}
	})
}

func TestParseExpressionShortcut(t *testing.T) {
	ctx := context.Background()

	t.Run("Calorie Net", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{err: errors.New("must not be called")},
			vars:     &fakeVars{eval: &vars.Evaluation{Kind: vars.EvalCalorieAdjustment, Total: 50}},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "+100 kcal -50 kcal"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.State != parse.StateDone {
			t.Errorf("expected done, got %s", out.State)
		}
		wantItem(t, out.Items, parse.FieldIntent, "calorie_adjustment")
		wantItem(t, out.Items, parse.FieldCalories, "+50 kcal")
	})

	t.Run("Money Net", func(t *testing.T) {
		h := &harness{
			vars: &fakeVars{eval: &vars.Evaluation{Kind: vars.EvalExpense, Total: -50, Currency: "EUR"}},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "-100 eur +50 eur"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.Intent != model.IntentExpense {
			t.Errorf("expected expense, got %s", out.Intent)
		}
		wantItem(t, out.Items, parse.FieldAmount, "-50.00 EUR")
	})

	t.Run("Rate Unavailable", func(t *testing.T) {
		h := &harness{
			vars: &fakeVars{evalErr: errors.New("exchange rates unreachable")},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "+100 eur -50 usd"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.State != parse.StateFailed {
			t.Errorf("expected failed, got %s", out.State)
		}
		wantInvalidItem(t, out.Items, parse.FieldAmount, parse.MsgNoConnection)
	})
}

func TestParseClassifierDown(t *testing.T) {
	h := &harness{classify: &stubProvider{err: errors.New("model offline")}}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "call mom tomorrow"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.Intent != model.IntentNone {
		t.Errorf("expected none, got %s", out.Intent)
	}
	if out.State != parse.StateFailed {
		t.Errorf("expected failed, got %s", out.State)
	}
	wantInvalidItem(t, out.Items, parse.FieldIntent, parse.MsgNoConnection)
	wantItem(t, out.Items, parse.FieldSubject, "call_mom_tomorrow")
}

func TestParseExtractorDownEchoes(t *testing.T) {
	h := &harness{
		classify: &stubProvider{text: `{"intent": "journal", "confidence": 0.9}`},
		extract:  &stubProvider{err: errors.New("model offline")},
	}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "what a day"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.Intent != model.IntentJournal {
		t.Errorf("expected journal, got %s", out.Intent)
	}
	if out.State != parse.StateFailed {
		t.Errorf("expected failed, got %s", out.State)
	}
	wantItem(t, out.Items, parse.FieldSubject, "what_a_day")
}

func TestParseLowConfidenceIntent(t *testing.T) {
	h := &harness{
		classify: &stubProvider{text: `{"intent": "journal", "confidence": 0.4}`},
	}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "hmm maybe"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	it := wantInvalidItem(t, out.Items, parse.FieldIntent, parse.MsgLowConfidence)
	if it.Value != "journal" {
		t.Errorf("expected the predicted label to stay visible, got %q", it.Value)
	}
}

func TestParseJournal(t *testing.T) {
	h := &harness{
		classify: &stubProvider{text: `{"intent": "journal", "confidence": 0.95}`},
		extract:  &stubProvider{text: `{"object": "great day", "mood": "😊", "location": "home", "confidence": 0.9}`},
	}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "great day https://example.com/walk"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.State != parse.StateDone {
		t.Errorf("expected done, got %s", out.State)
	}
	wantItem(t, out.Items, parse.FieldSubject, "great_day")
	wantItem(t, out.Items, parse.FieldMood, "😊")
	wantItem(t, out.Items, parse.FieldLocation, "home")
	wantItem(t, out.Items, parse.FieldURL, "https://example.com/walk")
}

func TestParseTranslatorFallsBack(t *testing.T) {
	h := &harness{
		classify:   &stubProvider{text: `{"intent": "reminder", "confidence": 0.9}`},
		translator: &fakeTranslator{err: errors.New("translate unreachable")},
	}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "dentist tomorrow at 9am"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	wantItem(t, out.Items, parse.FieldDay, "tomorrow")
	wantItem(t, out.Items, parse.FieldTime, "09:00")
}
