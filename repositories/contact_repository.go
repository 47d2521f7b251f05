package repositories

import (
	"clickexpress-cms/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(message *models.ContactMessage) error
	GetByID(id uint) (*models.ContactMessage, error)
	GetList(params models.ContactListParams) ([]models.ContactMessage, int64, error)
	Update(message *models.ContactMessage) error
	Delete(id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactRepository) GetByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	return &message, err
}

func (r *contactRepository) GetList(params models.ContactListParams) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	query := r.db.Model(&models.ContactMessage{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ?", pattern, pattern, pattern)
	}

	query.Count(&total)

	err := query.Order("created_at desc").Find(&messages).Error
	return messages, total, err
}

func (r *contactRepository) Update(message *models.ContactMessage) error {
	return r.db.Save(message).Error
}

func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
