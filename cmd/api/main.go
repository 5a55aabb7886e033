package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/dlukic-dev/agency-ai-assistant/internal/api/router"
	"github.com/dlukic-dev/agency-ai-assistant/internal/assistant"
	appconfig "github.com/dlukic-dev/agency-ai-assistant/internal/config"
	"github.com/dlukic-dev/agency-ai-assistant/internal/contact"
	"github.com/dlukic-dev/agency-ai-assistant/internal/notify"
	"github.com/dlukic-dev/agency-ai-assistant/internal/observability/metrics"
	"github.com/dlukic-dev/agency-ai-assistant/internal/translation"
	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

func main() {
	// Load .env in development; ignore the error when the file is absent.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting agency-ai-assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()
	chatMetrics := metrics.NewChatMetrics(nil)

	// Shared redis client for the session store and optional translation cache.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection failed", "error", err, "addr", cfg.RedisAddr)
			os.Exit(1)
		}
	}

	// Translation pipeline: cache + dictionary always, remote provider when configured.
	var remote translation.RemoteTranslator
	if cfg.TranslateAPIURL != "" {
		client, err := translation.NewAPIClient(cfg.TranslateAPIURL, cfg.TranslateAPIKey, cfg.TranslateTimeout)
		if err != nil {
			logger.Error("invalid translation API config", "error", err)
			os.Exit(1)
		}
		remote = client
		logger.Info("remote translation provider enabled", "url", cfg.TranslateAPIURL)
	}
	var translationCache translation.TranslationCache
	if cfg.TranslateCacheRedis && redisClient != nil {
		translationCache = translation.NewRedisCache(redisClient, cfg.TranslateCacheTTL, logger)
		logger.Info("using redis translation cache", "ttl", cfg.TranslateCacheTTL)
	} else {
		translationCache = translation.NewCache(translation.DefaultCacheSize)
	}
	pipeline := translation.NewPipeline(translationCache, translation.NewDictionary(), remote, logger)

	// Session store: redis when configured, in-memory otherwise.
	var sessions assistant.SessionStore
	if redisClient != nil {
		sessions = assistant.NewRedisSessionStore(redisClient, cfg.SessionTTL, nil)
		logger.Info("using redis session store", "addr", cfg.RedisAddr)
	} else {
		sessions = assistant.NewMemorySessionStore()
		logger.Info("using in-memory session store")
	}

	// Contact repository: postgres when configured, in-memory otherwise.
	var contacts contact.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		contacts = contact.NewPostgresRepository(pool)
		logger.Info("using postgres contact repository")
	} else {
		contacts = contact.NewInMemoryRepository()
		logger.Info("using in-memory contact repository")
	}

	// Submission notifications are optional.
	var notifier contact.Notifier
	if svc := notify.NewService(
		notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger),
		cfg.NotifyEmail,
		logger,
	); svc != nil {
		notifier = svc
		logger.Info("submission notifications enabled", "to", cfg.NotifyEmail)
	}

	orchOpts := []assistant.OrchestratorOption{
		assistant.WithMetrics(chatMetrics),
		assistant.WithDefaultLanguage(cfg.DefaultLanguage),
	}
	if cfg.GeminiAPIKey != "" {
		llm, err := assistant.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("gemini client init failed", "error", err)
			os.Exit(1)
		}
		defer llm.Close()
		orchOpts = append(orchOpts, assistant.WithLLM(llm, cfg.LLMTimeout))
		logger.Info("LLM replies enabled", "model", cfg.GeminiModelID)
	} else {
		logger.Info("no LLM configured, using template replies")
	}

	orchestrator := assistant.NewOrchestrator(
		assistant.NewExtractor(assistant.DateOrder(cfg.DateOrder), nil),
		assistant.NewClassifier(),
		sessions,
		pipeline,
		logger,
		orchOpts...,
	)

	modelID := ""
	if cfg.GeminiAPIKey != "" {
		modelID = cfg.GeminiModelID
	}

	r := router.New(&router.Config{
		Logger:             logger,
		AssistantHandler:   assistant.NewHandler(orchestrator, modelID, logger),
		AssistantWS:        assistant.NewWSHandler(orchestrator, cfg.MaxHistory, logger),
		ContactHandler:     contact.NewHandler(contacts, notifier, chatMetrics, logger),
		TranslationHandler: translation.NewHandler(pipeline, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSec:    cfg.RateLimitPerSec,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
