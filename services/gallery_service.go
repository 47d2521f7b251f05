package services

import (
	"errors"
	"strings"

	"clickexpress-cms/models"
	"clickexpress-cms/repositories"

	"gorm.io/gorm"
)

type GalleryService interface {
	GetImages(params models.GalleryListParams) ([]models.GalleryImage, int64, error)
	GetImage(id uint) (*models.GalleryImage, error)
	CreateImage(req models.CreateGalleryImageRequest) (*models.GalleryImage, error)
	UpdateImage(id uint, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error)
	DeleteImage(id uint) error
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
	validate    StructValidator
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, validate StructValidator) GalleryService {
	return &galleryService{galleryRepo: galleryRepo, validate: validate}
}

func (s *galleryService) GetImages(params models.GalleryListParams) ([]models.GalleryImage, int64, error) {
	return s.galleryRepo.GetList(params)
}

func (s *galleryService) GetImage(id uint) (*models.GalleryImage, error) {
	image, err := s.galleryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return image, nil
}

func (s *galleryService) CreateImage(req models.CreateGalleryImageRequest) (*models.GalleryImage, error) {
	fieldErrors := s.validate.ValidateStruct(&req)

	if strings.TrimSpace(req.Src) == "" {
		fieldErrors.Add("src", "This field may not be blank.")
	}
	if strings.TrimSpace(req.Alt) == "" {
		fieldErrors.Add("alt", "This field may not be blank.")
	}
	if req.Category != "" && !models.ValidGalleryCategory(req.Category) {
		fieldErrors.Add("category", "Category must be one of: portfolio, gallery, testimonial, team.")
	}
	if req.DisplayOrder != nil && *req.DisplayOrder < 0 {
		fieldErrors.Add("display_order", "Display order must not be negative.")
	}
	if fieldErrors.Any() {
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	image := &models.GalleryImage{
		Src:      req.Src,
		Alt:      req.Alt,
		Caption:  req.Caption,
		Category: req.Category,
	}
	if image.Category == "" {
		image.Category = models.CategoryGallery
	}
	if req.DisplayOrder != nil {
		image.DisplayOrder = *req.DisplayOrder
	}

	if err := s.galleryRepo.Create(image); err != nil {
		return nil, err
	}

	return image, nil
}

func (s *galleryService) UpdateImage(id uint, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error) {
	image, err := s.galleryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	fieldErrors := s.validate.ValidateStruct(&req)
	if req.Src != nil && strings.TrimSpace(*req.Src) == "" {
		fieldErrors.Add("src", "This field may not be blank.")
	}
	if req.Alt != nil && strings.TrimSpace(*req.Alt) == "" {
		fieldErrors.Add("alt", "This field may not be blank.")
	}
	if req.Category != nil && !models.ValidGalleryCategory(*req.Category) {
		fieldErrors.Add("category", "Category must be one of: portfolio, gallery, testimonial, team.")
	}
	if req.DisplayOrder != nil && *req.DisplayOrder < 0 {
		fieldErrors.Add("display_order", "Display order must not be negative.")
	}
	if fieldErrors.Any() {
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	if req.Src != nil {
		image.Src = *req.Src
	}
	if req.Alt != nil {
		image.Alt = *req.Alt
	}
	if req.Caption != nil {
		image.Caption = *req.Caption
	}
	if req.Category != nil {
		image.Category = *req.Category
	}
	if req.DisplayOrder != nil {
		image.DisplayOrder = *req.DisplayOrder
	}

	if err := s.galleryRepo.Update(image); err != nil {
		return nil, err
	}

	return image, nil
}

func (s *galleryService) DeleteImage(id uint) error {
	if _, err := s.galleryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	return s.galleryRepo.Delete(id)
}
