package translation

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// Handler exposes the translation pipeline over HTTP.
type Handler struct {
	pipeline *Pipeline
	logger   *logging.Logger
}

// NewHandler creates a translation HTTP handler.
func NewHandler(pipeline *Pipeline, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{pipeline: pipeline, logger: logger}
}

type translateBody struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
	SourceLang string `json:"sourceLang"`
}

// Translate handles POST /api/translation/translate.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var body translateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Text) == "" || strings.TrimSpace(body.TargetLang) == "" {
		writeError(w, http.StatusBadRequest, "text and targetLang are required")
		return
	}

	result := h.pipeline.Translate(r.Context(), body.Text, body.TargetLang, body.SourceLang)
	writeData(w, http.StatusOK, result)
}

type batchBody struct {
	Texts      []string `json:"texts"`
	TargetLang string   `json:"targetLang"`
	SourceLang string   `json:"sourceLang"`
}

// TranslateBatch handles POST /api/translation/batch.
func (h *Handler) TranslateBatch(w http.ResponseWriter, r *http.Request) {
	var body batchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.Texts) == 0 || strings.TrimSpace(body.TargetLang) == "" {
		writeError(w, http.StatusBadRequest, "texts and targetLang are required")
		return
	}

	results := make([]Result, 0, len(body.Texts))
	for _, text := range body.Texts {
		results = append(results, h.pipeline.Translate(r.Context(), text, body.TargetLang, body.SourceLang))
	}
	writeData(w, http.StatusOK, map[string]any{"translations": results})
}

// Detect handles POST /api/translation/detect.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	writeData(w, http.StatusOK, map[string]string{"language": DetectLanguage(body.Text)})
}

// Languages handles GET /api/translation/languages.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]any{"languages": h.pipeline.Languages()})
}

// CacheStats handles GET /api/translation/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.pipeline.CacheStats(r.Context()))
}

// ClearCache handles DELETE /api/translation/cache.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.pipeline.ResetCache(r.Context())
	h.logger.Info("translation cache cleared")
	writeData(w, http.StatusOK, map[string]string{"message": "cache cleared"})
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
