package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifelog-engine/pkg/exchangerate"
)

func TestExchangeRateClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/latest/USD"):
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"result": "success",
				"base_code": "USD",
				"rates": {"USD": 1, "EUR": 0.92, "TRY": 41.5}
			}`))
		case strings.HasSuffix(r.URL.Path, "/latest/XXX"):
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"result": "error", "error-type": "unsupported-code"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	client := exchangerate.New().WithBaseURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		rates, err := client.Latest(context.Background(), "usd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rates["EUR"] != 0.92 || rates["TRY"] != 41.5 {
			t.Errorf("unexpected rates: %v", rates)
		}
	})

	t.Run("Unsupported Code Flow", func(t *testing.T) {
		_, err := client.Latest(context.Background(), "XXX")
		if err == nil || !strings.Contains(err.Error(), "unsupported-code") {
			t.Fatalf("expected unsupported-code error, got %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Latest(context.Background(), "BRK")
		if err == nil || !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected 500 error, got %v", err)
		}
	})

	t.Run("Empty Base Flow", func(t *testing.T) {
		if _, err := client.Latest(context.Background(), " "); err == nil {
			t.Fatalf("expected error for empty base")
		}
	})
}
