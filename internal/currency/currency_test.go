package currency_test

import (
	"context"
	"errors"
	"testing"

	"lifelog-engine/internal/currency"
	"lifelog-engine/pkg/log"
)

type stubRates struct {
	calls int
	table map[string]float64
	err   error
}

func (s *stubRates) Latest(ctx context.Context, base string) (map[string]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func TestConvert(t *testing.T) {
	stub := &stubRates{table: map[string]float64{"USD": 1, "EUR": 0.92, "TRY": 41.5}}
	conv := currency.New(log.NewNop(), stub, currency.NewCache())
	ctx := context.Background()

	got, err := conv.Convert(ctx, 100, "USD", "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 92 {
		t.Errorf("Convert(100, USD, EUR) = %v, want 92", got)
	}
	if stub.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", stub.calls)
	}

	// the whole USD table is cached by the first fetch
	if _, err := conv.Convert(ctx, 100, "USD", "TRY"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := conv.Convert(ctx, 50, "usd", "eur"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("expected cached rates to be reused, got %d upstream calls", stub.calls)
	}
}

func TestConvertSameCurrency(t *testing.T) {
	stub := &stubRates{err: errors.New("network down")}
	conv := currency.New(log.NewNop(), stub, currency.NewCache())

	got, err := conv.Convert(context.Background(), 42.5, "USD", "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42.5 {
		t.Errorf("same-currency conversion = %v, want 42.5", got)
	}
	if stub.calls != 0 {
		t.Errorf("same-currency conversion must not hit upstream, got %d calls", stub.calls)
	}
}

func TestConvertRateUnavailable(t *testing.T) {
	t.Run("Upstream Error", func(t *testing.T) {
		stub := &stubRates{err: errors.New("connection refused")}
		conv := currency.New(log.NewNop(), stub, currency.NewCache())
		if _, err := conv.Convert(context.Background(), 10, "USD", "EUR"); !errors.Is(err, currency.ErrRateUnavailable) {
			t.Fatalf("error = %v, want ErrRateUnavailable", err)
		}
	})

	t.Run("Pair Not Quoted", func(t *testing.T) {
		stub := &stubRates{table: map[string]float64{"USD": 1, "EUR": 0.92}}
		conv := currency.New(log.NewNop(), stub, currency.NewCache())
		if _, err := conv.Convert(context.Background(), 10, "USD", "XXX"); !errors.Is(err, currency.ErrRateUnavailable) {
			t.Fatalf("error = %v, want ErrRateUnavailable", err)
		}
	})
}

func TestDetect(t *testing.T) {
	tests := []struct {
		in   string
		code string
		ok   bool
	}{
		{"$25", "USD", true},
		{"spent 30 dollars", "USD", true},
		{"€5 coffee", "EUR", true},
		{"30 euros", "EUR", true},
		{"100 TL", "TRY", true},
		{"45,50 TRY", "TRY", true},
		{"50 lira", "TRY", true},
		{"200 türk lirası", "TRY", true},
		{"¥1000", "JPY", true},
		{"R$ 30", "BRL", true},
		{"try some sushi", "", false},
		{"visited europe", "", false},
		{"just text", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code, ok := currency.Detect(tt.in)
			if ok != tt.ok || code != tt.code {
				t.Errorf("Detect(%q) = (%q, %v), want (%q, %v)", tt.in, code, ok, tt.code, tt.ok)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		code string
		ok   bool
	}{
		{"$", "USD", true},
		{"dollars", "USD", true},
		{"usd", "USD", true},
		{"try", "TRY", true}, // the model already decided this is a currency
		{"gel", "GEL", true},
		{"", "", false},
		{"??", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code, ok := currency.Normalize(tt.in)
			if ok != tt.ok || code != tt.code {
				t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.in, code, ok, tt.code, tt.ok)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		ok    bool
	}{
		{"1200", 1200, true},
		{"1,200 usd", 1200, true},
		{"45,50", 45.5, true},
		{"1,234.56", 1234.56, true},
		{"taxi 18.90", 18.9, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := currency.ParseAmount(tt.in)
			if ok != tt.ok || v != tt.value {
				t.Errorf("ParseAmount(%q) = (%v, %v), want (%v, %v)", tt.in, v, ok, tt.value, tt.ok)
			}
		})
	}
}
