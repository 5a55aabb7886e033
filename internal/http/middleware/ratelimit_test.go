package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRateLimiterAllowsBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request beyond burst should be denied")
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Now()
	rl := NewRateLimiter(2, 1)
	rl.now = func() time.Time { return now }

	if !rl.Allow("10.0.0.2") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.2") {
		t.Fatal("bucket should be empty")
	}

	now = now.Add(time.Second)
	if !rl.Allow("10.0.0.2") {
		t.Fatal("bucket should refill after a second")
	}
}

func TestRateLimiterIsPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	if !rl.Allow("10.0.0.3") {
		t.Fatal("first ip should be allowed")
	}
	if !rl.Allow("10.0.0.4") {
		t.Fatal("second ip has its own bucket")
	}
}

func TestRateLimitMiddlewareRejectsWithJSON(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := RateLimit(0.001, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", nil)
	req.Header.Set("X-Real-Ip", "10.0.0.5")

	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Fatalf("expected JSON error envelope, got %q", rec.Body.String())
	}
}
