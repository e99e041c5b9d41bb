package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mestakip/tiretrack/pkg/logger"
)

// Limiter implements fixed-window rate limiting backed by Redis
type Limiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
}

// NewLimiter creates a new rate limiter. A nil redis client disables limiting.
func NewLimiter(redisClient *redis.Client, maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		redis:       redisClient,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Middleware enforces the rate limit per client IP
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.redis == nil {
			next.ServeHTTP(w, r)
			return
		}

		identifier := clientIP(r)
		allowed, remaining, resetTime, err := l.checkLimit(r.Context(), identifier)
		if err != nil {
			// On limiter failure the request is allowed through
			logger.Logger.Error().
				Err(err).
				Str("identifier", identifier).
				Msg("Rate limiter error")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", l.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))

		if !allowed {
			logger.Logger.Warn().
				Str("identifier", identifier).
				Int("limit", l.maxRequests).
				Msg("Rate limit exceeded")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "Rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := fmt.Sprintf("ratelimit:%s", identifier)

	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to increment counter: %w", err)
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, time.Time{}, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}

	ttl, err := l.redis.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	resetTime := time.Now().Add(ttl)

	remaining := l.maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return count <= int64(l.maxRequests), remaining, resetTime, nil
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
