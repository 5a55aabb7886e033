package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/dlukic-dev/agency-ai-assistant/internal/observability/metrics"
	"github.com/dlukic-dev/agency-ai-assistant/internal/translation"
	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// Translator resolves text between locales. Satisfied by the translation
// pipeline; failures degrade to the original text, never to an error.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) translation.Result
}

// RespondRequest is one chat turn.
type RespondRequest struct {
	ConversationID string
	Message        string
	Language       string // target locale; the configured default when empty
	Context        string // optional frontend hint, e.g. "homepage"
	History        []Message
}

// StructuredData is the machine-readable half of a reply: everything the
// frontend needs to render progress and auto-submit the form once ready.
type StructuredData struct {
	Intent        Intent            `json:"intent"`
	Confidence    float64           `json:"confidence"`
	FormData      map[string]string `json:"formData"`
	MissingFields []string          `json:"missingFields"`
	ReadyToSubmit bool              `json:"readyToSubmit"`
}

// RespondResult is the orchestrator's answer for one turn.
type RespondResult struct {
	Response   string         `json:"response"`
	Language   string         `json:"language"`
	Structured StructuredData `json:"structuredData"`
}

// Orchestrator composes extraction, classification, slot filling, reply
// generation, and translation into one turn of conversation.
type Orchestrator struct {
	extractor   *Extractor
	classifier  *Classifier
	sessions    SessionStore
	translator  Translator
	llm         LLMClient // nil means template-only
	llmTimeout  time.Duration
	defaultLang string
	logger      *logging.Logger
	metrics     *metrics.ChatMetrics
}

// OrchestratorOption customizes an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithLLM attaches a remote LLM client with a per-call timeout.
func WithLLM(client LLMClient, timeout time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.llm = client
		if timeout > 0 {
			o.llmTimeout = timeout
		}
	}
}

// WithMetrics attaches prometheus instrumentation.
func WithMetrics(m *metrics.ChatMetrics) OrchestratorOption {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithDefaultLanguage sets the reply locale used when a request carries
// no language of its own.
func WithDefaultLanguage(lang string) OrchestratorOption {
	return func(o *Orchestrator) {
		if lang != "" {
			o.defaultLang = lang
		}
	}
}

// NewOrchestrator wires the conversation engine.
func NewOrchestrator(extractor *Extractor, classifier *Classifier, sessions SessionStore, translator Translator, logger *logging.Logger, opts ...OrchestratorOption) *Orchestrator {
	if logger == nil {
		logger = logging.Default()
	}
	o := &Orchestrator{
		extractor:   extractor,
		classifier:  classifier,
		sessions:    sessions,
		translator:  translator,
		llmTimeout:  12 * time.Second,
		defaultLang: "en",
		logger:      logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Respond runs one chat turn. The only error it returns is for an empty
// message; every downstream failure degrades to a best-effort reply.
func (o *Orchestrator) Respond(ctx context.Context, req RespondRequest) (RespondResult, error) {
	if req.Message == "" {
		return RespondResult{}, ErrEmptyMessage
	}
	locale := req.Language
	if locale == "" {
		locale = o.defaultLang
	}

	bag := o.extractor.Extract(req.Message)
	classification := o.classifier.Classify(req.Message, bag)

	session, err := o.sessions.Update(ctx, req.ConversationID, func(s *Session) {
		s.ApplyTurn(bag, classification.Intent, req.Message)
	})
	if err != nil {
		return RespondResult{}, fmt.Errorf("assistant: session update failed: %w", err)
	}

	readiness := CheckReadiness(session)
	flow := ClassifyContext(append(req.History, Message{Role: ChatRoleUser, Content: req.Message}))

	reply := o.generateReply(ctx, req, session, bag, flow, locale)

	// A booking/contact conversation that is still missing slots always ends
	// the turn by asking for the next one, whatever the LLM said.
	if (session.Intent == IntentBooking || session.Intent == IntentContact) && !readiness.Ready {
		reply = NextQuestion(readiness.Missing[0], "en")
	}

	translated := o.translator.Translate(ctx, reply, locale, "en")
	o.metrics.ObserveTranslation(string(translated.Method))
	o.metrics.ObserveTurn(string(classification.Intent), readiness.Ready)

	return RespondResult{
		Response: translated.Text,
		Language: locale,
		Structured: StructuredData{
			Intent:        classification.Intent,
			Confidence:    classification.Confidence,
			FormData:      session.Slots.FormData(),
			MissingFields: readiness.Missing,
			ReadyToSubmit: readiness.Ready,
		},
	}, nil
}

// generateReply prefers the remote LLM and falls back to templates.
func (o *Orchestrator) generateReply(ctx context.Context, req RespondRequest, session *Session, bag EntityBag, flow Flow, locale string) string {
	if o.llm == nil {
		return synthesizeReply(session.Intent, bag, flow)
	}

	userMessage := req.Message
	if locale != "en" {
		// The persona prompt is English; give the model the message in English
		// too. A pass-through result simply sends the original text.
		result := o.translator.Translate(ctx, req.Message, "en", locale)
		userMessage = result.Text
	}

	messages := make([]ChatMessage, 0, len(req.History)+1)
	for _, msg := range req.History {
		role := ChatRoleUser
		if msg.Role == ChatRoleAssistant {
			role = ChatRoleAssistant
		}
		messages = append(messages, ChatMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, ChatMessage{Role: ChatRoleUser, Content: userMessage})

	llmCtx, cancel := context.WithTimeout(ctx, o.llmTimeout)
	defer cancel()

	start := time.Now()
	resp, err := o.llm.Complete(llmCtx, LLMRequest{
		System:      []string{systemPrompt},
		Messages:    messages,
		MaxTokens:   512,
		Temperature: 0.6,
	})
	o.metrics.ObserveLLMLatency(time.Since(start).Seconds())
	if err != nil || resp.Text == "" {
		o.logger.Warn("assistant: llm completion failed, using template reply",
			"error", err, "conversation_id", req.ConversationID)
		o.metrics.ObserveLLMFallback()
		return synthesizeReply(session.Intent, bag, flow)
	}
	return resp.Text
}
