package repositories

import (
	"fmt"

	"clickexpress-cms/models"

	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(image *models.GalleryImage) error
	GetByID(id uint) (*models.GalleryImage, error)
	GetList(params models.GalleryListParams) ([]models.GalleryImage, int64, error)
	Update(image *models.GalleryImage) error
	Delete(id uint) error
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

var gallerySortFields = map[string]bool{
	"display_order": true,
	"created_at":    true,
}

func (r *galleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *galleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.First(&image, id).Error
	return &image, err
}

func (r *galleryRepository) GetList(params models.GalleryListParams) ([]models.GalleryImage, int64, error) {
	var images []models.GalleryImage
	var total int64

	query := r.db.Model(&models.GalleryImage{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("alt ILIKE ? OR caption ILIKE ?", pattern, pattern)
	}

	query.Count(&total)

	// Canonical order: display_order ascending, newest first within a slot.
	if gallerySortFields[params.SortBy] {
		sortOrder := params.SortOrder
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}
		query = query.Order(fmt.Sprintf("%s %s", params.SortBy, sortOrder))
	} else {
		query = query.Order("display_order asc").Order("created_at desc")
	}

	err := query.Find(&images).Error
	return images, total, err
}

func (r *galleryRepository) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

func (r *galleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}
