package contact

import (
	"strings"
	"time"
)

// Submission types.
const (
	TypeBooking = "booking"
	TypeContact = "contact"
)

// Contact is a finalized booking or contact request collected by the chat
// assistant or submitted through the site form.
type Contact struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName,omitempty"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	Service            string    `json:"service,omitempty"`
	BudgetRange        string    `json:"budgetRange,omitempty"`
	Timeline           string    `json:"timeline,omitempty"`
	PreferredDate      string    `json:"preferredDate,omitempty"`
	PreferredTime      string    `json:"preferredTime,omitempty"`
	Subject            string    `json:"subject,omitempty"`
	Message            string    `json:"message,omitempty"`
	ProjectDescription string    `json:"projectDescription,omitempty"`
	Source             string    `json:"source,omitempty"`
	Language           string    `json:"language,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CreateContactRequest is the request body for creating a submission. Field
// names mirror the assistant's formData keys so the frontend can forward the
// structured data unchanged.
type CreateContactRequest struct {
	Type               string `json:"type"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Service            string `json:"service"`
	BudgetRange        string `json:"budgetRange"`
	Timeline           string `json:"timeline"`
	PreferredDate      string `json:"preferredDate"`
	PreferredTime      string `json:"preferredTime"`
	Subject            string `json:"subject"`
	Message            string `json:"message"`
	ProjectDescription string `json:"projectDescription"`
	Source             string `json:"source"`
	Language           string `json:"language"`
}

// Normalize fills derivable fields: submissions with a service are bookings,
// the rest are contact messages.
func (r *CreateContactRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Type == "" {
		if r.Service != "" {
			r.Type = TypeBooking
		} else {
			r.Type = TypeContact
		}
	}
	if r.Type == TypeContact && r.Subject == "" {
		r.Subject = "General Inquiry"
	}
	if r.Source == "" {
		r.Source = "chat-assistant"
	}
}

// Validate checks the submission against the intent's required fields.
func (r *CreateContactRequest) Validate() error {
	if r.FirstName == "" {
		return ErrMissingName
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	switch r.Type {
	case TypeBooking:
		if r.Service == "" {
			return ErrMissingService
		}
	case TypeContact:
		if strings.TrimSpace(r.Message) == "" {
			return ErrMissingMessage
		}
	default:
		return ErrInvalidType
	}
	return nil
}
