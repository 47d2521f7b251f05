package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clickexpress-cms/helper"
	"clickexpress-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeContactRepo struct {
	messages map[uint]*models.ContactMessage
	nextID   uint
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: map[uint]*models.ContactMessage{}, nextID: 1}
}

func (r *fakeContactRepo) Create(m *models.ContactMessage) error {
	m.ID = r.nextID
	r.nextID++
	copied := *m
	r.messages[m.ID] = &copied
	return nil
}

func (r *fakeContactRepo) GetByID(id uint) (*models.ContactMessage, error) {
	if m, ok := r.messages[id]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContactRepo) GetList(params models.ContactListParams) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	for _, m := range r.messages {
		if params.Status != "" && string(m.Status) != params.Status {
			continue
		}
		messages = append(messages, *m)
	}
	return messages, int64(len(messages)), nil
}

func (r *fakeContactRepo) Update(m *models.ContactMessage) error {
	copied := *m
	r.messages[m.ID] = &copied
	return nil
}

func (r *fakeContactRepo) Delete(id uint) error {
	delete(r.messages, id)
	return nil
}

type fakeNewsletterRepo struct {
	subscribers map[string]*models.NewsletterSubscriber
	nextID      uint
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subscribers: map[string]*models.NewsletterSubscriber{}, nextID: 1}
}

func (r *fakeNewsletterRepo) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	if s, ok := r.subscribers[email]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNewsletterRepo) Create(s *models.NewsletterSubscriber) error {
	s.ID = r.nextID
	r.nextID++
	copied := *s
	r.subscribers[s.Email] = &copied
	return nil
}

func (r *fakeNewsletterRepo) Update(s *models.NewsletterSubscriber) error {
	copied := *s
	r.subscribers[s.Email] = &copied
	return nil
}

func (r *fakeNewsletterRepo) GetAll() ([]models.NewsletterSubscriber, int64, error) {
	var subscribers []models.NewsletterSubscriber
	for _, s := range r.subscribers {
		subscribers = append(subscribers, *s)
	}
	return subscribers, int64(len(subscribers)), nil
}

func newTestContactService(primary, secondary EmailSender) (ContactService, *fakeContactRepo, *fakeNewsletterRepo) {
	contactRepo := newFakeContactRepo()
	newsletterRepo := newFakeNewsletterRepo()
	notifier := NewNotifier(primary, secondary, "admin@example.com")
	return NewContactService(contactRepo, newsletterRepo, notifier, helper.NewHTTPHelper()), contactRepo, newsletterRepo
}

func validContactRequest() models.CreateContactMessageRequest {
	return models.CreateContactMessageRequest{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Subject: "Hello",
		Message: "I would like a quote.",
	}
}

func TestCreateMessageNameBoundary(t *testing.T) {
	svc, _, _ := newTestContactService(nil, nil)

	req := validContactRequest()
	req.Name = "a"
	_, err := svc.CreateMessage(context.Background(), req)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details, "name")

	req.Name = "ab"
	_, err = svc.CreateMessage(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateMessageMessageBoundary(t *testing.T) {
	svc, _, _ := newTestContactService(nil, nil)

	req := validContactRequest()
	req.Message = strings.Repeat("x", 9)
	_, err := svc.CreateMessage(context.Background(), req)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details, "message")

	req.Message = strings.Repeat("x", 10)
	_, err = svc.CreateMessage(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateMessageAggregatesAllFailures(t *testing.T) {
	svc, _, _ := newTestContactService(nil, nil)

	_, err := svc.CreateMessage(context.Background(), models.CreateContactMessageRequest{
		Name:    "a",
		Email:   "no-at-sign",
		Subject: "",
		Message: "short",
	})
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	assert.Len(t, validationErr.Details, 4)
}

func TestCreateMessageReportsTagAndDomainFailuresTogether(t *testing.T) {
	svc, _, _ := newTestContactService(nil, nil)

	// Over-long subject violates a tag rule, short message a domain rule;
	// one response must carry both.
	req := validContactRequest()
	req.Subject = strings.Repeat("s", 250)
	req.Message = strings.Repeat("x", 9)

	_, err := svc.CreateMessage(context.Background(), req)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	assert.Contains(t, validationErr.Details, "subject")
	assert.Contains(t, validationErr.Details, "message")
}

func TestCreateMessageTrimsAndDefaultsStatus(t *testing.T) {
	svc, repo, _ := newTestContactService(nil, nil)

	req := validContactRequest()
	req.Name = "  Jamie  "
	req.Message = "  I would like a quote.  "

	message, err := svc.CreateMessage(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Jamie", message.Name)
	assert.Equal(t, "I would like a quote.", message.Message)
	assert.Equal(t, models.MessageNew, message.Status)

	stored, err := repo.GetByID(message.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageNew, stored.Status)
}

func TestCreateMessageSurvivesProviderFailure(t *testing.T) {
	failing := &recordingSender{err: errors.New("provider down")}
	svc, repo, _ := newTestContactService(failing, failing)

	message, err := svc.CreateMessage(context.Background(), validContactRequest())
	require.NoError(t, err)

	stored, err := repo.GetByID(message.ID)
	require.NoError(t, err)
	assert.Equal(t, message.Email, stored.Email)
}

func TestUpdateMessageStatus(t *testing.T) {
	svc, _, _ := newTestContactService(nil, nil)

	message, err := svc.CreateMessage(context.Background(), validContactRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateMessageStatus(message.ID, models.MessageReplied)
	require.NoError(t, err)
	assert.Equal(t, models.MessageReplied, updated.Status)

	_, err = svc.UpdateMessageStatus(message.ID, "spam")
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.UpdateMessageStatus(999, models.MessageRead)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	svc, _, repo := newTestContactService(nil, nil)

	first, err := svc.Subscribe(context.Background(), "News@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "news@example.com", first.Email)
	assert.True(t, first.IsActive)

	// Deactivate, then re-subscribe: same row comes back active.
	first.IsActive = false
	require.NoError(t, repo.Update(first))

	second, err := svc.Subscribe(context.Background(), "news@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsActive)

	_, total, err := svc.GetSubscribers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSubscribeValidatesEmail(t *testing.T) {
	svc, _, _ := newTestContactService(nil, nil)

	_, err := svc.Subscribe(context.Background(), "not-an-email")
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details, "email")
}
