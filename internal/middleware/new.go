package middleware

import (
	"university-assistant/pkg/log"
)

// Config holds the settings the middlewares are built from.
type Config struct {
	RateLimitPerMin int
	AllowedOrigins  []string
	TelegramSecret  string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins map[string]struct{}
	allowAll       bool
	telegramSecret string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
		telegramSecret: cfg.TelegramSecret,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			mw.allowAll = true
			continue
		}
		mw.allowedOrigins[o] = struct{}{}
	}
	return mw
}
