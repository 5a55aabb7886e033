package middleware

import (
	"net/http"
	"strings"
)

const (
	corsHeaders = "Content-Type, Accept-Language, X-Conversation-Id"
	corsMethods = "GET, POST, DELETE, OPTIONS"
	corsMaxAge  = "600"
)

type corsPolicy struct {
	origins  map[string]bool
	wildcard bool
}

func (p corsPolicy) permits(origin string) bool {
	return origin != "" && (p.wildcard || p.origins[origin])
}

// CORS restricts cross-origin access to the configured origin allowlist.
// A "*" entry echoes any Origin back; the widget is embedded on the
// agency site, so production deployments list that origin explicitly.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := corsPolicy{origins: make(map[string]bool)}
	for _, o := range allowedOrigins {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			policy.wildcard = true
		default:
			policy.origins[o] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if policy.permits(origin) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				h.Set("Access-Control-Allow-Headers", corsHeaders)
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Max-Age", corsMaxAge)
			}

			if r.Method == http.MethodOptions && origin != "" && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
