package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iarchive/iarchive/internal/server/response"
)

// RateLimiter implements fixed-window rate limiting per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int           // requests per window
	window   time.Duration // window length
}

// visitor tracks rate limit state for a single IP.
type visitor struct {
	remaining   int
	windowStart time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per minute
// per IP. Stale visitors are swept in the background.
func NewRateLimiter(limit int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   time.Minute,
	}

	go rl.sweep()

	return rl
}

// sweep removes visitors whose window expired long ago.
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.windowStart) > 10*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// allow checks if a request from the IP is allowed.
func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok || time.Since(v.windowStart) > rl.window {
		v = &visitor{remaining: rl.limit, windowStart: time.Now()}
		rl.visitors[ip] = v
	}

	if v.remaining > 0 {
		v.remaining--
		return true
	}
	return false
}

// RateLimit middleware limits requests per IP address.
func RateLimit(rl *RateLimiter, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Honor X-Forwarded-For when present
			ip := r.RemoteAddr
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				ip = forwarded
			}

			if !rl.allow(ip) {
				logger.Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Msg("Rate limit exceeded")

				response.RateLimited(w, "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
