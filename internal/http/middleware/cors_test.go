package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCORSOriginAllowlist(t *testing.T) {
	tests := []struct {
		name      string
		allowed   []string
		origin    string
		wantEcho  string
		wantReach bool
	}{
		{
			name:      "listed origin is echoed",
			allowed:   []string{"https://agency.example"},
			origin:    "https://agency.example",
			wantEcho:  "https://agency.example",
			wantReach: true,
		},
		{
			name:      "unknown origin gets no headers",
			allowed:   []string{"https://agency.example"},
			origin:    "https://unknown.example",
			wantEcho:  "",
			wantReach: true,
		},
		{
			name:      "wildcard echoes any origin",
			allowed:   []string{"*"},
			origin:    "https://random.example",
			wantEcho:  "https://random.example",
			wantReach: true,
		},
		{
			name:      "blank entries are ignored",
			allowed:   []string{" ", "https://agency.example"},
			origin:    "https://agency.example",
			wantEcho:  "https://agency.example",
			wantReach: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			CORS(tt.allowed)(next).ServeHTTP(rec, req)

			if reached != tt.wantReach {
				t.Fatalf("handler reached = %v, want %v", reached, tt.wantReach)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantEcho {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantEcho)
			}
			if tt.wantEcho != "" {
				headers := rec.Header().Get("Access-Control-Allow-Headers")
				if !strings.Contains(headers, "X-Conversation-Id") {
					t.Fatalf("allowed headers %q missing conversation id", headers)
				}
			}
		})
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/ai/chat", nil)
	req.Header.Set("Origin", "https://agency.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	CORS([]string{"https://agency.example"})(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != corsMethods {
		t.Fatalf("allowed methods = %q, want %q", got, corsMethods)
	}
}
