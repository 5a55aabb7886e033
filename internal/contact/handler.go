package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dlukic-dev/agency-ai-assistant/internal/observability/metrics"
	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// Notifier tells the team about a new submission. Delivery failures are
// logged, not surfaced: the record is already persisted.
type Notifier interface {
	NotifySubmission(ctx context.Context, c *Contact) error
}

// Handler handles HTTP requests for booking/contact submissions.
type Handler struct {
	repo     Repository
	notifier Notifier
	logger   *logging.Logger
	metrics  *metrics.ChatMetrics
}

// NewHandler creates a submissions handler. notifier and m may be nil.
func NewHandler(repo Repository, notifier Notifier, m *metrics.ChatMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, notifier: notifier, logger: logger, metrics: m}
}

// SubmitBooking handles POST /api/ai/submit-booking. The body is the
// assistant's formData, forwarded by the frontend once readyToSubmit is true.
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			h.metrics.ObserveSubmission(req.Type, "rejected")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to store submission", "error", err, "type", req.Type)
		h.metrics.ObserveSubmission(req.Type, "error")
		writeError(w, http.StatusInternalServerError, "failed to store submission")
		return
	}

	if h.notifier != nil {
		if err := h.notifier.NotifySubmission(r.Context(), c); err != nil {
			h.logger.Error("failed to notify team", "error", err, "contact_id", c.ID)
		}
	}

	h.logger.Info("submission stored", "contact_id", c.ID, "type", c.Type, "service", c.Service)
	h.metrics.ObserveSubmission(c.Type, "accepted")

	writeData(w, http.StatusCreated, map[string]string{
		"message":   "Thank you! We have received your request and will get back to you within one business day.",
		"type":      c.Type,
		"contactId": c.ID,
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrMissingService) ||
		errors.Is(err, ErrMissingMessage) ||
		errors.Is(err, ErrInvalidType)
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
