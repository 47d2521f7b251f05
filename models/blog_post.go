package models

import "time"

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

func ValidPostStatus(s PostStatus) bool {
	return s == StatusDraft || s == StatusPublished
}

type BlogPost struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Title         string     `json:"title" gorm:"not null"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content" gorm:"type:text;not null"`
	FeaturedImage string     `json:"featured_image"`
	AuthorID      uint       `json:"author_id" gorm:"not null"`
	Author        User       `json:"author" gorm:"foreignKey:AuthorID"`
	Status        PostStatus `json:"status" gorm:"default:'draft'"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
