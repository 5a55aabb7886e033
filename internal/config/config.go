package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
	DefaultLanguage    string

	// Conversation engine
	SessionTTL      time.Duration
	MaxHistory      int
	DateOrder       string // "dmy" or "mdy" for ambiguous numeric dates
	RateLimitPerSec float64
	RateLimitBurst  int

	// Gemini LLM
	GeminiAPIKey  string
	GeminiModelID string
	LLMTimeout    time.Duration

	// Remote translation provider
	TranslateAPIURL  string
	TranslateAPIKey  string
	TranslateTimeout time.Duration

	// Translation cache; redis-backed when enabled and REDIS_ADDR is set
	TranslateCacheRedis bool
	TranslateCacheTTL   time.Duration

	// Stores
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	DatabaseURL   string

	// SendGrid Email Configuration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	NotifyEmail       string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "en"),

		SessionTTL:      getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		MaxHistory:      getEnvAsInt("MAX_HISTORY", 5),
		DateOrder:       strings.ToLower(strings.TrimSpace(getEnv("DATE_ORDER", "dmy"))),
		RateLimitPerSec: getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvAsInt("RATE_LIMIT_BURST", 20),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		LLMTimeout:    getEnvAsDuration("LLM_TIMEOUT", 12*time.Second),

		TranslateAPIURL:  getEnv("TRANSLATE_API_URL", ""),
		TranslateAPIKey:  getEnv("TRANSLATE_API_KEY", ""),
		TranslateTimeout: getEnvAsDuration("TRANSLATE_TIMEOUT", 6*time.Second),

		TranslateCacheRedis: getEnvAsBool("TRANSLATE_CACHE_REDIS", false),
		TranslateCacheTTL:   getEnvAsDuration("TRANSLATE_CACHE_TTL", 24*time.Hour),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		DatabaseURL:   getEnv("DATABASE_URL", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Agency Assistant"),
		NotifyEmail:       getEnv("NOTIFY_EMAIL", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
