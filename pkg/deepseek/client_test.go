package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %s", got)
		}

		var wire struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		prompt := wire.Messages[len(wire.Messages)-1].Content
		switch {
		case strings.Contains(prompt, "cause_500"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"message": "internal error", "type": "server_error"}}`))
		case strings.Contains(prompt, "cause_empty"):
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices": []}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"intent\": \"meal\"}"}, "finish_reason": "stop"}], "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}}`))
		}
	}))
}

func TestComplete(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		resp, err := client.Complete(ctx, &Request{
			System: "You are a classifier.",
			Prompt: "ate two eggs",
		})
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if resp.Text != `{"intent": "meal"}` {
			t.Errorf("unexpected text: %s", resp.Text)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		_, err := client.Complete(ctx, &Request{Prompt: "cause_500"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "API error 500") {
			t.Errorf("unexpected error: %v", err)
		}
		if !strings.Contains(err.Error(), "internal error") {
			t.Errorf("expected API message in error, got: %v", err)
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		_, err := client.Complete(ctx, &Request{Prompt: "cause_empty"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "empty response") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := New(Config{})
		if err == nil {
			t.Fatal("expected error for missing api key")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg := Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base url, got %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default http client")
		}
	})
}
