package repositories

import (
	"fmt"

	"clickexpress-cms/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id uint) (*models.BlogPost, error)
	GetList(params models.BlogListParams, isPublic bool) ([]models.BlogPost, int64, error)
	Update(post *models.BlogPost) error
	Delete(id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// blogSortFields is the ordering whitelist; anything else falls back to
// the canonical -created_at order.
var blogSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
}

func (r *blogRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *blogRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Author").First(&post, id).Error
	return &post, err
}

func (r *blogRepository) GetList(params models.BlogListParams, isPublic bool) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	query := r.db.Model(&models.BlogPost{}).Preload("Author")

	if isPublic {
		query = query.Where("status = ?", models.StatusPublished)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ? OR content ILIKE ?", pattern, pattern, pattern)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if !blogSortFields[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&posts).Error
	return posts, total, err
}

func (r *blogRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *blogRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}
