package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/dlukic-dev/agency-ai-assistant/internal/contact"
	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

// Service sends submission notifications to the agency team inbox.
type Service struct {
	sender  EmailSender
	toEmail string
	logger  *logging.Logger
}

// NewService creates a notification service. Returns nil when sender or
// recipient is unset so callers can skip wiring notifications entirely.
func NewService(sender EmailSender, toEmail string, logger *logging.Logger) *Service {
	if sender == nil || toEmail == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{sender: sender, toEmail: toEmail, logger: logger}
}

// NotifySubmission emails the team about a new booking or contact request.
func (s *Service) NotifySubmission(ctx context.Context, c *contact.Contact) error {
	if s == nil {
		return nil
	}

	var subject string
	switch c.Type {
	case contact.TypeBooking:
		subject = fmt.Sprintf("New booking request from %s", displayName(c))
	default:
		subject = fmt.Sprintf("New contact message from %s", displayName(c))
	}

	if err := s.sender.Send(ctx, EmailMessage{
		To:      s.toEmail,
		ToName:  "Team",
		Subject: subject,
		Body:    formatSubmission(c),
	}); err != nil {
		return fmt.Errorf("notify: submission %s: %w", c.ID, err)
	}

	s.logger.Info("submission notification sent", "contact_id", c.ID, "type", c.Type)
	return nil
}

func displayName(c *contact.Contact) string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.Email
	}
	return name
}

func formatSubmission(c *contact.Contact) string {
	var b strings.Builder
	writeLine := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}

	writeLine("Type", c.Type)
	writeLine("Name", displayName(c))
	writeLine("Email", c.Email)
	writeLine("Phone", c.Phone)

	if c.Type == contact.TypeBooking {
		writeLine("Service", c.Service)
		writeLine("Budget", c.BudgetRange)
		writeLine("Timeline", c.Timeline)
		writeLine("Preferred date", c.PreferredDate)
		writeLine("Preferred time", c.PreferredTime)
		writeLine("Project description", c.ProjectDescription)
	} else {
		writeLine("Subject", c.Subject)
		writeLine("Message", c.Message)
	}

	writeLine("Language", c.Language)
	writeLine("Source", c.Source)
	writeLine("Submission ID", c.ID)
	return b.String()
}
