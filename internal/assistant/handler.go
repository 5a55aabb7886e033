package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// Handler exposes the conversation engine over HTTP.
type Handler struct {
	orchestrator *Orchestrator
	llmEnabled   bool
	modelID      string
	logger       *logging.Logger
}

// NewHandler creates the chat HTTP handler. modelID is reported by /info and
// empty when running template-only.
func NewHandler(orchestrator *Orchestrator, modelID string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		orchestrator: orchestrator,
		llmEnabled:   orchestrator.llm != nil,
		modelID:      modelID,
		logger:       logger,
	}
}

type chatBody struct {
	Message             string        `json:"message"`
	ConversationID      string        `json:"conversationId"`
	Language            string        `json:"language"`
	Context             string        `json:"context"`
	ConversationHistory []historyItem `json:"conversationHistory"`
}

type historyItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat handles POST /api/ai/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var body chatBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if body.ConversationID == "" {
		body.ConversationID = uuid.NewString()
	}

	history := make([]Message, 0, len(body.ConversationHistory))
	for _, item := range body.ConversationHistory {
		history = append(history, Message{Role: item.Role, Content: item.Content, Timestamp: time.Now().UTC()})
	}

	result, err := h.orchestrator.Respond(r.Context(), RespondRequest{
		ConversationID: body.ConversationID,
		Message:        body.Message,
		Language:       body.Language,
		Context:        body.Context,
		History:        history,
	})
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}
		h.logger.Error("chat turn failed", "error", err, "conversation_id", body.ConversationID)
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"conversationId": body.ConversationID,
		"response":       result.Response,
		"language":       result.Language,
		"structuredData": result.Structured,
	})
}

// Info handles GET /api/ai/info.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	provider := "templates"
	if h.llmEnabled {
		provider = "gemini"
	}
	intents := make([]string, 0, len(intentOrder))
	for _, intent := range intentOrder {
		intents = append(intents, string(intent))
	}
	writeData(w, http.StatusOK, map[string]any{
		"provider":  provider,
		"model":     h.modelID,
		"languages": []string{"en", "sr"},
		"intents":   intents,
	})
}

// Health handles GET /api/ai/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
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
