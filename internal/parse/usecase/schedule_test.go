package usecase

import (
	"context"
	"testing"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/parse"
)

func TestParseEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Day And Time From Text", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "event", "confidence": 0.93}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "meeting tomorrow at 3pm"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.State != parse.StateDone {
			t.Errorf("expected done, got %s", out.State)
		}
		if out.Items[0].Field != parse.FieldIntent {
			t.Errorf("expected the intent item first, got %q", out.Items[0].Field)
		}
		wantItem(t, out.Items, parse.FieldSubject, "meeting")
		wantItem(t, out.Items, parse.FieldDay, "tomorrow")
		wantItem(t, out.Items, parse.FieldTime, "15:00")
	})

	t.Run("Invalid Time Surfaces", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "event", "confidence": 0.9}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "meeting tomorrow at 13pm"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		wantItem(t, out.Items, parse.FieldDay, "tomorrow")
		it := wantInvalidItem(t, out.Items, parse.FieldTime, parse.MsgInvalidTime)
		if it.Value != "13pm" {
			t.Errorf("expected the raw token kept, got %q", it.Value)
		}
	})

	t.Run("Day Defaults To Today", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "event", "confidence": 0.9}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "team standup at 10:15"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		wantItem(t, out.Items, parse.FieldDay, "2025-03-10")
		wantItem(t, out.Items, parse.FieldTime, "10:15")
	})

	t.Run("Model Candidate Fills Missing Time", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "event", "confidence": 0.9}`},
			extract:  &stubProvider{text: `{"object": "lunch with alex", "time": "12:30", "confidence": 0.8}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "lunch with alex"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		it, ok := findItem(out.Items, parse.FieldTime)
		if !ok {
			t.Fatalf("time item missing from %+v", out.Items)
		}
		if it.Value != "12:30" || !it.IsValid {
			t.Errorf("expected valid 12:30, got %+v", it)
		}
		if it.Confidence == nil || *it.Confidence != 0.8 {
			t.Errorf("expected the model confidence carried, got %+v", it.Confidence)
		}
	})
}

func TestParseReminder(t *testing.T) {
	h := &harness{
		classify: &stubProvider{text: `{"intent": "reminder", "confidence": 0.95}`},
	}

	out, err := h.useCase(t).Parse(context.Background(), parse.ParseInput{Text: "remind me to call mom tomorrow at 5pm"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.Intent != model.IntentReminder {
		t.Errorf("expected reminder, got %s", out.Intent)
	}
	wantItem(t, out.Items, parse.FieldSubject, "call_mom")
	wantItem(t, out.Items, parse.FieldDay, "tomorrow")
	wantItem(t, out.Items, parse.FieldTime, "17:00")
}

func TestParseWork(t *testing.T) {
	ctx := context.Background()

	t.Run("Clock In Defaults To Now", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "work_start", "confidence": 0.9}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "starting work"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.Intent != model.IntentWorkStart {
			t.Errorf("expected work_start, got %s", out.Intent)
		}
		wantItem(t, out.Items, parse.FieldDay, "2025-03-10")
		wantItem(t, out.Items, parse.FieldTime, "14:30")
	})

	t.Run("Stated Time Wins", func(t *testing.T) {
		h := &harness{
			classify: &stubProvider{text: `{"intent": "work_end", "confidence": 0.9}`},
		}

		out, err := h.useCase(t).Parse(ctx, parse.ParseInput{Text: "finished work at 18:45"})
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if out.Intent != model.IntentWorkEnd {
			t.Errorf("expected work_end, got %s", out.Intent)
		}
		wantItem(t, out.Items, parse.FieldTime, "18:45")
	})
}
