package currency

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"lifelog-engine/pkg/exchangerate"
	pkgLog "lifelog-engine/pkg/log"
)

type implConverter struct {
	l     pkgLog.Logger
	rates exchangerate.IExchangeRate
	cache *expirable.LRU[string, float64]
	mu    sync.Mutex // serializes upstream fetches
}

var _ Converter = (*implConverter)(nil)

// New creates a new Converter. The cache is injected so callers own its
// sizing and TTL; NewCache builds one with the package defaults.
func New(l pkgLog.Logger, rates exchangerate.IExchangeRate, cache *expirable.LRU[string, float64]) Converter {
	return &implConverter{
		l:     l,
		rates: rates,
		cache: cache,
	}
}

// NewCache builds a rate cache with the default size and TTL.
func NewCache() *expirable.LRU[string, float64] {
	return expirable.NewLRU[string, float64](CacheSize, nil, CacheTTL)
}
