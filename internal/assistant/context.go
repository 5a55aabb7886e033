package assistant

import (
	"strings"
	"sync"
	"time"
)

// Message is one conversation turn kept for context classification only;
// slot data never comes from here.
type Message struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Flow is the coarse conversation bias used to pick a response template
// family. It never gates readiness.
type Flow string

const (
	FlowBooking Flow = "booking_flow"
	FlowPricing Flow = "pricing_discussion"
	FlowGeneral Flow = "general_inquiry"
)

const (
	historyWindow = 5
	contextScan   = 4
)

var bookingFlowCues = []string{"consultation", "schedule", "appointment", "book", "rezervis", "zakaz", "termin"}
var pricingFlowCues = []string{"price", "cost", "budget", "cena", "kosta", "košta"}

// ClassifyContext inspects the most recent messages for flow cues. Booking
// cues win over pricing cues; anything else is a general inquiry.
func ClassifyContext(recent []Message) Flow {
	if len(recent) > contextScan {
		recent = recent[len(recent)-contextScan:]
	}

	for _, cue := range bookingFlowCues {
		for _, msg := range recent {
			if strings.Contains(strings.ToLower(msg.Content), cue) {
				return FlowBooking
			}
		}
	}
	for _, cue := range pricingFlowCues {
		for _, msg := range recent {
			if strings.Contains(strings.ToLower(msg.Content), cue) {
				return FlowPricing
			}
		}
	}
	return FlowGeneral
}

// HistoryBuffer is a bounded ring of the last few messages for one
// conversation. Used by the WebSocket transport, which has no client-supplied
// history on each turn.
type HistoryBuffer struct {
	mu  sync.Mutex
	buf []Message
	max int
}

// NewHistoryBuffer creates a ring buffer bounded to max messages, or to
// the default context window when max is not positive.
func NewHistoryBuffer(max int) *HistoryBuffer {
	if max <= 0 {
		max = historyWindow
	}
	return &HistoryBuffer{max: max}
}

// Add appends a message, evicting the oldest when the buffer is full.
func (h *HistoryBuffer) Add(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf = append(h.buf, msg)
	if len(h.buf) > h.max {
		h.buf = h.buf[len(h.buf)-h.max:]
	}
}

// Recent returns a copy of the buffered messages, oldest first.
func (h *HistoryBuffer) Recent() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Message, len(h.buf))
	copy(out, h.buf)
	return out
}
