package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dlukic-dev/agency-ai-assistant/internal/assistant"
	"github.com/dlukic-dev/agency-ai-assistant/internal/contact"
	httpmiddleware "github.com/dlukic-dev/agency-ai-assistant/internal/http/middleware"
	"github.com/dlukic-dev/agency-ai-assistant/internal/translation"
	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	AssistantHandler   *assistant.Handler
	AssistantWS        *assistant.WSHandler
	ContactHandler     *contact.Handler
	TranslationHandler *translation.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	RateLimitPerSec    float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	if cfg.RateLimitPerSec > 0 {
		r.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))
	}

	r.Get("/health", cfg.AssistantHandler.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/ai", func(ai chi.Router) {
		ai.Post("/chat", cfg.AssistantHandler.Chat)
		ai.Post("/submit-booking", cfg.ContactHandler.SubmitBooking)
		ai.Get("/info", cfg.AssistantHandler.Info)
		ai.Get("/health", cfg.AssistantHandler.Health)
		if cfg.AssistantWS != nil {
			ai.Get("/ws", cfg.AssistantWS.ServeHTTP)
		}
	})

	r.Route("/api/translation", func(tr chi.Router) {
		tr.Post("/translate", cfg.TranslationHandler.Translate)
		tr.Post("/batch", cfg.TranslationHandler.TranslateBatch)
		tr.Post("/detect", cfg.TranslationHandler.Detect)
		tr.Get("/languages", cfg.TranslationHandler.Languages)
		tr.Get("/cache/stats", cfg.TranslationHandler.CacheStats)
		tr.Delete("/cache", cfg.TranslationHandler.ClearCache)
	})

	return r
}
