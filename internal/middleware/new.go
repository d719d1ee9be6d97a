package middleware

import (
	"sofia-assistant/pkg/log"
)

// Middleware bundles the HTTP middlewares with their dependencies.
type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// Config controls middleware behavior.
type Config struct {
	RateLimitPerMin int
}

// New creates the middleware set.
func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
