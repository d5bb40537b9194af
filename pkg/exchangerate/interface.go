package exchangerate

import (
	"context"
)

// IExchangeRate defines the interface for fetching reference exchange rates.
// Implementations are safe for concurrent use.
type IExchangeRate interface {
	Latest(ctx context.Context, base string) (map[string]float64, error)
}
