package translation

import (
	"context"
	"strings"

	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// Method records which tier of the pipeline produced a translation.
type Method string

const (
	MethodNone     Method = "none"
	MethodCache    Method = "cache"
	MethodManual   Method = "manual"
	MethodAPI      Method = "api"
	MethodFallback Method = "fallback"
)

// Result is a resolved translation.
type Result struct {
	Text   string `json:"translatedText"`
	Method Method `json:"method"`
}

// TranslationCache is the cache tier of the pipeline. Cache (in-memory)
// and RedisCache both satisfy it.
type TranslationCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key, value string)
	Stats(ctx context.Context) CacheStats
	Reset(ctx context.Context)
}

// Pipeline resolves translations through an ordered fallback chain:
// pass-through, cache, curated dictionary, remote provider, original text.
// The remote tier is optional; without it the chain skips from dictionary to
// fallback.
type Pipeline struct {
	cache  TranslationCache
	dict   *Dictionary
	remote RemoteTranslator
	logger *logging.Logger
}

// NewPipeline builds a pipeline. remote may be nil.
func NewPipeline(cache TranslationCache, dict *Dictionary, remote RemoteTranslator, logger *logging.Logger) *Pipeline {
	if cache == nil {
		cache = NewCache(DefaultCacheSize)
	}
	if dict == nil {
		dict = NewDictionary()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{cache: cache, dict: dict, remote: remote, logger: logger}
}

// Translate resolves one text. Errors never escape: the worst case is the
// original text with MethodFallback.
func (p *Pipeline) Translate(ctx context.Context, text, targetLang, sourceLang string) Result {
	if sourceLang == "" {
		sourceLang = "en"
	}
	// English output never needs translating: canned text is authored in
	// English and the LLM replies in English.
	if targetLang == "" || targetLang == sourceLang || targetLang == "en" {
		return Result{Text: text, Method: MethodNone}
	}
	if strings.TrimSpace(text) == "" {
		return Result{Text: text, Method: MethodNone}
	}

	key := Key(text, sourceLang, targetLang)
	if cached, ok := p.cache.Get(ctx, key); ok {
		return Result{Text: cached, Method: MethodCache}
	}

	if translated, ok := p.dict.Lookup(text, sourceLang, targetLang); ok {
		p.cache.Put(ctx, key, translated)
		return Result{Text: translated, Method: MethodManual}
	}

	if p.remote != nil {
		translated, err := p.remote.Translate(ctx, text, sourceLang, targetLang)
		if err == nil {
			p.cache.Put(ctx, key, translated)
			return Result{Text: translated, Method: MethodAPI}
		}
		p.logger.Warn("translation: remote provider failed, falling back", "error", err, "target", targetLang)
	}

	// Tier 5: hand the original text back untranslated. Never cached, so a
	// recovered provider gets another chance on the next request.
	return Result{Text: text, Method: MethodFallback}
}

// CacheStats exposes cache usage for the stats endpoint.
func (p *Pipeline) CacheStats(ctx context.Context) CacheStats {
	return p.cache.Stats(ctx)
}

// ResetCache clears the cache. Used by the DELETE endpoint and tests.
func (p *Pipeline) ResetCache(ctx context.Context) {
	p.cache.Reset(ctx)
}

// Languages lists supported target locales.
func (p *Pipeline) Languages() []string {
	return p.dict.Languages()
}
