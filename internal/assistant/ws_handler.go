package assistant

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// WSHandler serves the embedded chat widget over WebSocket. Each connection
// owns a conversation id and a small history buffer; turn semantics are the
// same as the HTTP endpoint.
type WSHandler struct {
	orchestrator *Orchestrator
	maxHistory   int
	logger       *logging.Logger

	mu    sync.RWMutex
	conns map[string]*websocket.Conn
}

// NewWSHandler creates the WebSocket chat handler. maxHistory bounds the
// per-connection history buffer; zero means the default window.
func NewWSHandler(orchestrator *Orchestrator, maxHistory int, logger *logging.Logger) *WSHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WSHandler{
		orchestrator: orchestrator,
		maxHistory:   maxHistory,
		logger:       logger,
		conns:        make(map[string]*websocket.Conn),
	}
}

// wsInbound is what the widget sends.
type wsInbound struct {
	Type string `json:"type"` // "message", "ping"
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// wsOutbound is what we send to the widget.
type wsOutbound struct {
	Type           string          `json:"type"` // "message", "typing", "session", "pong", "error"
	Text           string          `json:"text,omitempty"`
	Role           string          `json:"role,omitempty"`
	ConversationID string          `json:"conversationId,omitempty"`
	Structured     *StructuredData `json:"structuredData,omitempty"`
	Timestamp      string          `json:"timestamp,omitempty"`
}

// ServeHTTP upgrades to WebSocket and handles real-time chat.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serve(conn, r)
	}).ServeHTTP(w, r)
}

func (h *WSHandler) serve(conn *websocket.Conn, r *http.Request) {
	convID := r.URL.Query().Get("conversation")
	if convID == "" {
		convID = generateConversationID()
	}
	lang := r.URL.Query().Get("lang")

	_ = websocket.JSON.Send(conn, wsOutbound{Type: "session", ConversationID: convID})

	h.mu.Lock()
	h.conns[convID] = conn
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		if h.conns[convID] == conn {
			delete(h.conns, convID)
		}
		h.mu.Unlock()
	}()

	h.logger.Info("websocket chat opened", "conversation_id", convID)
	history := NewHistoryBuffer(h.maxHistory)

	for {
		var msg wsInbound
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("websocket chat closed", "conversation_id", convID, "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, wsOutbound{Type: "pong"})
			continue
		}
		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		language := msg.Lang
		if language == "" {
			language = lang
		}

		_ = websocket.JSON.Send(conn, wsOutbound{Type: "typing"})

		result, err := h.orchestrator.Respond(r.Context(), RespondRequest{
			ConversationID: convID,
			Message:        msg.Text,
			Language:       language,
			History:        history.Recent(),
		})
		if err != nil {
			h.logger.Error("websocket turn failed", "error", err, "conversation_id", convID)
			_ = websocket.JSON.Send(conn, wsOutbound{
				Type: "error",
				Text: "Sorry, something went wrong. Please try again.",
			})
			continue
		}

		now := time.Now().UTC()
		history.Add(Message{Role: ChatRoleUser, Content: msg.Text, Timestamp: now})
		history.Add(Message{Role: ChatRoleAssistant, Content: result.Response, Timestamp: now})

		_ = websocket.JSON.Send(conn, wsOutbound{
			Type:           "message",
			Role:           ChatRoleAssistant,
			Text:           result.Response,
			ConversationID: convID,
			Structured:     &result.Structured,
			Timestamp:      now.Format(time.RFC3339),
		})
	}
}

// generateConversationID creates a random conversation identifier.
func generateConversationID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}
