package models

import "time"

type GalleryCategory string

const (
	CategoryPortfolio   GalleryCategory = "portfolio"
	CategoryGallery     GalleryCategory = "gallery"
	CategoryTestimonial GalleryCategory = "testimonial"
	CategoryTeam        GalleryCategory = "team"
)

func ValidGalleryCategory(c GalleryCategory) bool {
	switch c {
	case CategoryPortfolio, CategoryGallery, CategoryTestimonial, CategoryTeam:
		return true
	}
	return false
}

type GalleryImage struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	Src          string          `json:"src" gorm:"not null"`
	Alt          string          `json:"alt" gorm:"not null"`
	Caption      string          `json:"caption"`
	Category     GalleryCategory `json:"category" gorm:"default:'gallery'"`
	DisplayOrder int             `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
