package middleware

import (
	"lifelog-engine/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config tunes the middleware stack.
type Config struct {
	// RateLimitPerMin caps parse requests per client IP. Zero disables the
	// limiter.
	RateLimitPerMin int
}

// New creates the middleware bundle.
func New(l log.Logger, cfg Config) Middleware {
	var limiter *rateLimiter
	if cfg.RateLimitPerMin > 0 {
		limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
