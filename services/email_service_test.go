package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"clickexpress-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	To      string
	Subject string
}

type recordingSender struct {
	sent []sentMail
	err  error
}

func (s *recordingSender) Send(_ context.Context, to, subject, _, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject})
	return nil
}

func testContactMessage() *models.ContactMessage {
	return &models.ContactMessage{
		Name:      "Jamie",
		Email:     "jamie@example.com",
		Subject:   "Quote",
		Message:   "I would like a quote.",
		CreatedAt: time.Now(),
	}
}

func TestNotifyContactUsesPrimary(t *testing.T) {
	primary := &recordingSender{}
	secondary := &recordingSender{}
	notifier := NewNotifier(primary, secondary, "admin@example.com")

	notifier.NotifyContact(context.Background(), testContactMessage())

	// Admin notification plus user confirmation.
	require.Len(t, primary.sent, 2)
	assert.Equal(t, "admin@example.com", primary.sent[0].To)
	assert.Equal(t, "jamie@example.com", primary.sent[1].To)
	assert.Empty(t, secondary.sent)
}

func TestNotifyContactFallsBackOnPrimaryFailure(t *testing.T) {
	primary := &recordingSender{err: errors.New("mailgun down")}
	secondary := &recordingSender{}
	notifier := NewNotifier(primary, secondary, "admin@example.com")

	notifier.NotifyContact(context.Background(), testContactMessage())

	require.Len(t, secondary.sent, 2)
	assert.Equal(t, "New Contact Message: Quote", secondary.sent[0].Subject)
	assert.Equal(t, "Thank you for contacting ClickExpress", secondary.sent[1].Subject)
}

func TestNotifyContactUnconfiguredPrimary(t *testing.T) {
	secondary := &recordingSender{}
	notifier := NewNotifier(nil, secondary, "admin@example.com")

	notifier.NotifyContact(context.Background(), testContactMessage())

	assert.Len(t, secondary.sent, 2)
}

func TestNotifyContactSwallowsAllFailures(t *testing.T) {
	primary := &recordingSender{err: errors.New("down")}
	secondary := &recordingSender{err: errors.New("also down")}
	notifier := NewNotifier(primary, secondary, "admin@example.com")

	// Must not panic or propagate anything.
	notifier.NotifyContact(context.Background(), testContactMessage())
	notifier2 := NewNotifier(nil, nil, "admin@example.com")
	notifier2.NotifyContact(context.Background(), testContactMessage())
}

func TestNewsletterConfirmationPrimaryOnly(t *testing.T) {
	primary := &recordingSender{err: errors.New("down")}
	secondary := &recordingSender{}
	notifier := NewNotifier(primary, secondary, "admin@example.com")

	notifier.SendNewsletterConfirmation(context.Background(), "news@example.com")

	// No fallback for the newsletter confirmation.
	assert.Empty(t, secondary.sent)

	working := &recordingSender{}
	notifier = NewNotifier(working, secondary, "admin@example.com")
	notifier.SendNewsletterConfirmation(context.Background(), "news@example.com")

	require.Len(t, working.sent, 1)
	assert.Equal(t, "Welcome to ClickExpress Newsletter", working.sent[0].Subject)
	assert.Empty(t, secondary.sent)
}
