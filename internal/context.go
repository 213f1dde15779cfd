package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextClientIPKey ctxKey = "clientIP"

// ClientIPFromContext returns the client IP recorded by the rate limit
// middleware, or empty string when the middleware did not run.
func ClientIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if ip, ok := ctx.Value(ContextClientIPKey).(string); ok {
		return ip
	}
	return ""
}

func ContextWithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ContextClientIPKey, ip)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
