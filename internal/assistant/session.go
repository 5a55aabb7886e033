package assistant

import (
	"context"
	"sync"
	"time"
)

// Slots are the named fields collected across conversation turns.
type Slots struct {
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Service            string `json:"service,omitempty"`
	BudgetRange        string `json:"budgetRange,omitempty"`
	Timeline           string `json:"timeline,omitempty"`
	PreferredDate      string `json:"preferredDate,omitempty"`
	PreferredTime      string `json:"preferredTime,omitempty"`
	ProjectDescription string `json:"projectDescription,omitempty"`
	Subject            string `json:"subject,omitempty"`
	Message            string `json:"message,omitempty"`
}

// Get returns the slot value by its form-field name. The switch is the
// authoritative slot list; readiness tables index into it.
func (s Slots) Get(field string) string {
	switch field {
	case "firstName":
		return s.FirstName
	case "lastName":
		return s.LastName
	case "email":
		return s.Email
	case "phone":
		return s.Phone
	case "service":
		return s.Service
	case "budgetRange":
		return s.BudgetRange
	case "timeline":
		return s.Timeline
	case "preferredDate":
		return s.PreferredDate
	case "preferredTime":
		return s.PreferredTime
	case "projectDescription":
		return s.ProjectDescription
	case "subject":
		return s.Subject
	case "message":
		return s.Message
	default:
		return ""
	}
}

// FormData maps the filled slots to form-field names for the frontend.
func (s Slots) FormData() map[string]string {
	out := make(map[string]string)
	for _, field := range slotFields {
		if v := s.Get(field); v != "" {
			out[field] = v
		}
	}
	return out
}

var slotFields = []string{
	"firstName", "lastName", "email", "phone", "service", "budgetRange",
	"timeline", "preferredDate", "preferredTime", "projectDescription",
	"subject", "message",
}

// Session is the accumulated slot/intent state for one conversation.
type Session struct {
	ID        string    `json:"id"`
	Intent    Intent    `json:"intent,omitempty"`
	Slots     Slots     `json:"slots"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// intentPrecedence ranks intents for the merge rule: once a conversation has
// committed to booking or contact, chit-chat intents never displace it.
func intentPrecedence(intent Intent) int {
	switch intent {
	case IntentBooking:
		return 3
	case IntentContact:
		return 2
	default:
		return 1
	}
}

const descriptionBackfillMinLen = 50

// ApplyTurn merges one message's extraction and classification into the
// session. Slot writes are first-write-wins; only the intent may change, and
// only to one of equal or higher precedence.
func (s *Session) ApplyTurn(bag EntityBag, intent Intent, rawMessage string) {
	if s.Intent == "" || intentPrecedence(intent) >= intentPrecedence(s.Intent) {
		s.Intent = intent
	}

	fillIfEmpty(&s.Slots.FirstName, bag.FirstName)
	fillIfEmpty(&s.Slots.LastName, bag.LastName)
	fillIfEmpty(&s.Slots.Email, bag.Email)
	fillIfEmpty(&s.Slots.Phone, bag.Phone)
	fillIfEmpty(&s.Slots.Service, bag.Service)
	fillIfEmpty(&s.Slots.BudgetRange, bag.BudgetRange)
	fillIfEmpty(&s.Slots.Timeline, bag.Timeline)
	fillIfEmpty(&s.Slots.PreferredDate, bag.PreferredDate)
	fillIfEmpty(&s.Slots.PreferredTime, bag.PreferredTime)

	// Heuristic backfill: a long message in a booking/services conversation is
	// almost always the project brief; in a contact conversation it is the body.
	switch s.Intent {
	case IntentBooking, IntentServices:
		if s.Slots.ProjectDescription == "" && len(rawMessage) > descriptionBackfillMinLen {
			s.Slots.ProjectDescription = rawMessage
		}
	case IntentContact:
		if s.Slots.Message == "" {
			s.Slots.Message = rawMessage
			if s.Slots.Subject == "" {
				s.Slots.Subject = "General Inquiry"
			}
		}
	}

	s.UpdatedAt = time.Now().UTC()
}

func fillIfEmpty(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

// SessionStore holds conversation sessions keyed by conversation id.
// Update must be atomic per key: the callback sees a consistent snapshot and
// its result is stored without interleaving writes from concurrent turns.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, id string, fn func(*Session)) (*Session, error)
	Reset(ctx context.Context) error
}

// MemorySessionStore is the default in-process store. A mutex per session
// serializes merges for the same conversation.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
}

type memorySession struct {
	mu      sync.Mutex
	session Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*memorySession)}
}

// Get returns a copy of the session, or ErrSessionNotFound.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	copied := entry.session
	return &copied, nil
}

// Update applies fn to the session under its per-key lock, creating the
// session on first use.
func (s *MemorySessionStore) Update(ctx context.Context, id string, fn func(*Session)) (*Session, error) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if !ok {
		entry = &memorySession{session: Session{ID: id, CreatedAt: time.Now().UTC()}}
		s.sessions[id] = entry
	}
	s.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(&entry.session)
	copied := entry.session
	return &copied, nil
}

// Reset drops all sessions. Intended for tests and the explicit reset hook.
func (s *MemorySessionStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.sessions = make(map[string]*memorySession)
	s.mu.Unlock()
	return nil
}
