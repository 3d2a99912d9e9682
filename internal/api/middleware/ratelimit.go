package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// visitor holds a single token bucket and the last time it was seen, so
// idle buckets can be evicted.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a process-local, per-client-IP token-bucket limiter for
// edge-level abuse control. Buckets are created on demand and idle entries
// are evicted opportunistically during lookups to bound memory.
//
// Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	ttl   time.Duration

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter constructs a limiter replenishing rps tokens per second
// with the given burst size. A burst below 1 is coerced to 1.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		ttl:      10 * time.Minute,
		visitors: make(map[string]*visitor),
	}
}

// Handler installs the limiter as router middleware. Rejected requests
// receive the uniform error body with status 429.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			shared.RespondWithJSON(w, http.StatusTooManyRequests, &shared.APIError{
				StatusCode: http.StatusTooManyRequests,
				Message:    "Too many requests",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	// Opportunistic cleanup keeps the map bounded without a background
	// goroutine.
	for k, other := range l.visitors {
		if now.Sub(other.lastSeen) > l.ttl {
			delete(l.visitors, k)
		}
	}

	return v.limiter.Allow()
}

// clientIP extracts the client address, relying on chi's RealIP middleware
// having already rewritten RemoteAddr from forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
