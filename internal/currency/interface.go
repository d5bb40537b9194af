package currency

import (
	"context"
)

// Converter turns an amount in one currency into another using cached
// reference rates. Implementations are safe for concurrent use.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}
