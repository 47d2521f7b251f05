package repositories

import (
	"clickexpress-cms/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	Create(subscriber *models.NewsletterSubscriber) error
	Update(subscriber *models.NewsletterSubscriber) error
	GetAll() ([]models.NewsletterSubscriber, int64, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	return &subscriber, err
}

func (r *newsletterRepository) Create(subscriber *models.NewsletterSubscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *newsletterRepository) Update(subscriber *models.NewsletterSubscriber) error {
	return r.db.Save(subscriber).Error
}

func (r *newsletterRepository) GetAll() ([]models.NewsletterSubscriber, int64, error) {
	var subscribers []models.NewsletterSubscriber
	var total int64

	query := r.db.Model(&models.NewsletterSubscriber{})
	query.Count(&total)

	err := query.Order("subscribed_at desc").Find(&subscribers).Error
	return subscribers, total, err
}
