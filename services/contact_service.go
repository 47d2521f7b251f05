package services

import (
	"context"
	"errors"
	"strings"

	"clickexpress-cms/models"
	"clickexpress-cms/repositories"

	"gorm.io/gorm"
)

type ContactService interface {
	CreateMessage(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactMessage, error)
	GetMessages(params models.ContactListParams) ([]models.ContactMessage, int64, error)
	GetMessage(id uint) (*models.ContactMessage, error)
	UpdateMessageStatus(id uint, status models.MessageStatus) (*models.ContactMessage, error)
	DeleteMessage(id uint) error
	Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	GetSubscribers() ([]models.NewsletterSubscriber, int64, error)
}

type contactService struct {
	contactRepo    repositories.ContactRepository
	newsletterRepo repositories.NewsletterRepository
	notifier       *Notifier
	validate       StructValidator
}

func NewContactService(contactRepo repositories.ContactRepository, newsletterRepo repositories.NewsletterRepository, notifier *Notifier, validate StructValidator) ContactService {
	return &contactService{
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
		notifier:       notifier,
		validate:       validate,
	}
}

// CreateMessage persists the submission first; notification is best-effort
// and never affects the stored message or the caller's outcome.
func (s *contactService) CreateMessage(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactMessage, error) {
	fieldErrors := s.validate.ValidateStruct(&req)
	fieldErrors.Merge(validateContactInput(req))
	if fieldErrors.Any() {
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	message := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Subject: req.Subject,
		Message: strings.TrimSpace(req.Message),
		Phone:   req.Phone,
		Status:  models.MessageNew,
	}

	if err := s.contactRepo.Create(message); err != nil {
		return nil, err
	}

	s.notifier.NotifyContact(ctx, message)

	return message, nil
}

func (s *contactService) GetMessages(params models.ContactListParams) ([]models.ContactMessage, int64, error) {
	return s.contactRepo.GetList(params)
}

func (s *contactService) GetMessage(id uint) (*models.ContactMessage, error) {
	message, err := s.contactRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return message, nil
}

func (s *contactService) UpdateMessageStatus(id uint, status models.MessageStatus) (*models.ContactMessage, error) {
	if !models.ValidMessageStatus(status) {
		fieldErrors := models.FieldErrors{}
		fieldErrors.Add("status", "Invalid status. Must be: new, read, replied, or closed.")
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	message, err := s.contactRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	message.Status = status
	if err := s.contactRepo.Update(message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *contactService) DeleteMessage(id uint) error {
	if _, err := s.contactRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	return s.contactRepo.Delete(id)
}

// Subscribe creates the subscriber or reactivates the existing row for the
// same (lowercased) email; it never duplicates.
func (s *contactService) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || !strings.Contains(email, "@") {
		fieldErrors := models.FieldErrors{}
		fieldErrors.Add("email", "Please enter a valid email address.")
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	subscriber, err := s.newsletterRepo.GetByEmail(email)
	switch {
	case err == nil:
		if !subscriber.IsActive {
			subscriber.IsActive = true
			if err := s.newsletterRepo.Update(subscriber); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber = &models.NewsletterSubscriber{Email: email, IsActive: true}
		if err := s.newsletterRepo.Create(subscriber); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.notifier.SendNewsletterConfirmation(ctx, subscriber.Email)

	return subscriber, nil
}

func (s *contactService) GetSubscribers() ([]models.NewsletterSubscriber, int64, error) {
	return s.newsletterRepo.GetAll()
}

func validateContactInput(req models.CreateContactMessageRequest) models.FieldErrors {
	fieldErrors := models.FieldErrors{}

	if len(strings.TrimSpace(req.Name)) < 2 {
		fieldErrors.Add("name", "Name must be at least 2 characters long.")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		fieldErrors.Add("email", "Please enter a valid email address.")
	}
	if strings.TrimSpace(req.Subject) == "" {
		fieldErrors.Add("subject", "This field may not be blank.")
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		fieldErrors.Add("message", "Message must be at least 10 characters long.")
	}

	return fieldErrors
}
