package middleware

import (
	"github.com/enesozmus/betterrest/pkg/log"
)

// Config holds middleware tunables.
type Config struct {
	// RateLimitPerMin caps recommendation requests per client per minute.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	config  Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
