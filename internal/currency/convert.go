package currency

import (
	"context"
	"fmt"
	"strings"
)

// Convert converts amount from one ISO code to another. Same-currency
// conversions return immediately without touching the cache or the network.
func (c *implConverter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return 0, fmt.Errorf("currency pair is incomplete: %w", ErrRateUnavailable)
	}
	if from == to {
		return amount, nil
	}

	rate, err := c.rate(ctx, from, to)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

func (c *implConverter) rate(ctx context.Context, from, to string) (float64, error) {
	key := from + "/" + to
	if rate, ok := c.cache.Get(key); ok {
		return rate, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// another goroutine may have filled the cache while we waited
	if rate, ok := c.cache.Get(key); ok {
		return rate, nil
	}

	table, err := c.rates.Latest(ctx, from)
	if err != nil {
		c.l.Warnf(ctx, "currency.Convert: rate fetch for %s failed: %v", from, err)
		return 0, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	// one fetch prices every pair with this base, cache them all
	for code, rate := range table {
		c.cache.Add(from+"/"+code, rate)
	}

	rate, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("%s not quoted against %s: %w", to, from, ErrRateUnavailable)
	}
	return rate, nil
}
