package router

import (
	"context"
	"errors"
	"testing"

	"lifelog-engine/internal/model"
	"lifelog-engine/pkg/llm"
	"lifelog-engine/pkg/log"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Text: s.text, ProviderName: "stub", ModelName: "stub-model"}, nil
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }

func newRouter(p llm.Provider) *SemanticRouter {
	manager := llm.NewManager([]llm.Provider{p}, &llm.Config{RetryAttempts: 1}, log.NewNop())
	return New(manager, log.NewNop())
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Plain JSON", func(t *testing.T) {
		r := newRouter(&stubProvider{text: `{"intent": "meal", "confidence": 0.92, "reasoning": "food mentioned"}`})

		out, err := r.Classify(ctx, "ate two eggs")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Intent != model.IntentMeal {
			t.Errorf("expected meal, got %s", out.Intent)
		}
		if out.Confidence != 0.92 {
			t.Errorf("expected 0.92, got %f", out.Confidence)
		}
	})

	t.Run("Fenced JSON", func(t *testing.T) {
		r := newRouter(&stubProvider{text: "```json\n{\"intent\": \"activity\", \"confidence\": 0.8}\n```"})

		out, err := r.Classify(ctx, "ran 5 km")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Intent != model.IntentActivity {
			t.Errorf("expected activity, got %s", out.Intent)
		}
	})

	t.Run("Percent Confidence Normalized", func(t *testing.T) {
		r := newRouter(&stubProvider{text: `{"intent": "expense", "confidence": 85}`})

		out, err := r.Classify(ctx, "taxi 150")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Confidence != 0.85 {
			t.Errorf("expected 0.85, got %f", out.Confidence)
		}
	})

	t.Run("Broken JSON Falls Back", func(t *testing.T) {
		r := newRouter(&stubProvider{text: "not json at all"})

		out, err := r.Classify(ctx, "hello")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Intent != model.IntentNone {
			t.Errorf("expected none, got %s", out.Intent)
		}
		if out.Confidence != ClassifyFallbackConfidence {
			t.Errorf("expected fallback confidence, got %f", out.Confidence)
		}
	})

	t.Run("Unknown Label Falls Back", func(t *testing.T) {
		r := newRouter(&stubProvider{text: `{"intent": "shopping_list", "confidence": 0.9}`})

		out, err := r.Classify(ctx, "buy milk")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Intent != model.IntentNone {
			t.Errorf("expected none, got %s", out.Intent)
		}
	})

	t.Run("Uppercase Label Accepted", func(t *testing.T) {
		r := newRouter(&stubProvider{text: `{"intent": "JOURNAL", "confidence": 0.7}`})

		out, err := r.Classify(ctx, "feeling great")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if out.Intent != model.IntentJournal {
			t.Errorf("expected journal, got %s", out.Intent)
		}
	})

	t.Run("Provider Error Propagates", func(t *testing.T) {
		r := newRouter(&stubProvider{err: errors.New("upstream down")})

		_, err := r.Classify(ctx, "anything")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, llm.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})
}
