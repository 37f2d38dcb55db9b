package httpserver

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mkravets/tasktrack/internal/logging"
)

// RateLimiter counts requests per client IP in a fixed one-minute window
// backed by redis, so the limit holds across replicas. When redis is
// unreachable the limiter fails open: availability wins over strictness,
// and the failure is logged.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger logging.Logger
}

func NewRateLimiter(client *redis.Client, limit int, logger logging.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: time.Minute,
		logger: logger,
	}
}

// Allow increments the counter for key and reports whether the request is
// within the window's limit.
func (rl *RateLimiter) Allow(r *http.Request, key string) bool {
	ctx := r.Context()
	redisKey := "ratelimit:" + key

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.logger.Warn(ctx, "rate limiter unavailable, allowing request", "error", err)
		return true
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.logger.Warn(ctx, "rate limiter expire failed", "error", err)
		}
	}

	return count <= int64(rl.limit)
}

// Middleware rejects over-limit requests with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(r, clientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
