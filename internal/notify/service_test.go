package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlukic-dev/agency-ai-assistant/internal/contact"
	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

type fakeSender struct {
	sent []EmailMessage
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestNewServiceRequiresSenderAndRecipient(t *testing.T) {
	assert.Nil(t, NewService(nil, "team@example.com", logging.Default()))
	assert.Nil(t, NewService(&fakeSender{}, "", logging.Default()))
}

func TestNewServiceWithUnconfiguredSendGrid(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{FromEmail: "noreply@example.com"}, nil)
	if sender != nil {
		t.Fatal("sender without an API key must be a nil interface value")
	}
	assert.Nil(t, NewService(sender, "team@example.com", logging.Default()))
}

func TestNotifySubmissionBooking(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "team@example.com", logging.Default())

	c := &contact.Contact{
		ID:            "sub-1",
		Type:          contact.TypeBooking,
		FirstName:     "Ana",
		LastName:      "Petrovic",
		Email:         "ana@example.com",
		Service:       "web-development",
		BudgetRange:   "5k-10k",
		PreferredDate: "2026-09-15",
	}
	require.NoError(t, svc.NotifySubmission(context.Background(), c))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "team@example.com", msg.To)
	assert.Contains(t, msg.Subject, "booking")
	assert.Contains(t, msg.Subject, "Ana Petrovic")
	for _, want := range []string{"web-development", "5k-10k", "2026-09-15", "sub-1"} {
		assert.Contains(t, msg.Body, want)
	}
	assert.NotContains(t, msg.Body, "Message:", "booking body should not carry contact fields")
}

func TestNotifySubmissionContact(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "team@example.com", logging.Default())

	c := &contact.Contact{
		ID:        "sub-2",
		Type:      contact.TypeContact,
		FirstName: "Marko",
		Email:     "marko@example.com",
		Subject:   "General Inquiry",
		Message:   "Do you work with startups?",
	}
	require.NoError(t, svc.NotifySubmission(context.Background(), c))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Subject, "contact message")
	assert.Contains(t, sender.sent[0].Body, "Do you work with startups?")
}

func TestNotifySubmissionSenderError(t *testing.T) {
	sendErr := errors.New("smtp down")
	svc := NewService(&fakeSender{err: sendErr}, "team@example.com", logging.Default())

	err := svc.NotifySubmission(context.Background(), &contact.Contact{
		ID:    "sub-3",
		Type:  contact.TypeContact,
		Email: "x@example.com",
	})
	require.ErrorIs(t, err, sendErr)
}
