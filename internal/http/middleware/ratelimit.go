package middleware

import (
	"net/http"
	"sync"
	"time"
)

// staleAfter is how long an idle client's bucket survives before the
// next sweep drops it.
const staleAfter = 10 * time.Minute

// sweepThreshold bounds the bucket map; once it grows past this, Allow
// sweeps stale entries inline instead of running a background goroutine.
const sweepThreshold = 1024

// RateLimiter is a per-client token bucket. Each client id (normally an
// IP address) refills at rate tokens per second up to burst.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*tokenBucket
	rate    float64
	burst   float64
	now     func() time.Time
}

type tokenBucket struct {
	tokens float64
	seen   time.Time
}

// NewRateLimiter creates a limiter allowing rate requests per second
// with the given burst per client.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*tokenBucket),
		rate:    rate,
		burst:   float64(burst),
		now:     time.Now,
	}
}

// Allow reports whether one more request from id fits the limit.
func (rl *RateLimiter) Allow(id string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.clients) > sweepThreshold {
		rl.sweep(now)
	}

	b := rl.clients[id]
	if b == nil {
		b = &tokenBucket{tokens: rl.burst, seen: now}
		rl.clients[id] = b
	} else {
		b.tokens += now.Sub(b.seen).Seconds() * rl.rate
		if b.tokens > rl.burst {
			b.tokens = rl.burst
		}
		b.seen = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets idle past staleAfter. Caller holds rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-staleAfter)
	for id, b := range rl.clients {
		if b.seen.Before(cutoff) {
			delete(rl.clients, id)
		}
	}
}

// RateLimit rejects requests above the configured per-IP rate with
// 429 and the standard JSON error envelope.
func RateLimit(rate float64, burst int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// chi's RealIP middleware rewrites this header upstream.
			ip := r.Header.Get("X-Real-Ip")
			if ip == "" {
				ip = r.RemoteAddr
			}
			if !limiter.Allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"error":"rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
