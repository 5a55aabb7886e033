package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dlukic-dev/agency-ai-assistant/internal/assistant"
	"github.com/dlukic-dev/agency-ai-assistant/internal/contact"
	"github.com/dlukic-dev/agency-ai-assistant/internal/translation"
	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logging.Default()

	pipeline := translation.NewPipeline(
		translation.NewCache(translation.DefaultCacheSize),
		translation.NewDictionary(),
		nil,
		logger,
	)
	orch := assistant.NewOrchestrator(
		assistant.NewExtractor(assistant.DateOrderDMY, nil),
		assistant.NewClassifier(),
		assistant.NewMemorySessionStore(),
		pipeline,
		logger,
	)

	return New(&Config{
		Logger:             logger,
		AssistantHandler:   assistant.NewHandler(orch, "", logger),
		ContactHandler:     contact.NewHandler(contact.NewInMemoryRepository(), nil, nil, logger),
		TranslationHandler: translation.NewHandler(pipeline, logger),
		CORSAllowedOrigins: []string{"*"},
	})
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/health", "/api/ai/health"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: got %d", path, rec.Code)
		}
	}
}

func TestRouterChatRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	body := `{"message":"I want to book a consultation, my name is Ana","language":"en"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ConversationID string `json:"conversationId"`
			Response       string `json:"response"`
			StructuredData struct {
				Intent string `json:"intent"`
			} `json:"structuredData"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.ConversationID == "" || resp.Data.Response == "" {
		t.Fatalf("incomplete payload: %+v", resp)
	}
	if resp.Data.StructuredData.Intent != "booking" {
		t.Errorf("intent = %q, want booking", resp.Data.StructuredData.Intent)
	}
}

func TestRouterSubmitBookingValidation(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/submit-booking", strings.NewReader(`{"email":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestRouterTranslationEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/translation/languages", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("languages: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/translation/cache/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("cache stats: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/translation/cache", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("clear cache: got %d", rec.Code)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
}
