package services

import (
	"errors"
	"strings"

	"clickexpress-cms/models"
	"clickexpress-cms/repositories"

	"gorm.io/gorm"
)

type BlogService interface {
	GetPublicPosts(params models.BlogListParams) ([]models.BlogPost, int64, error)
	GetPublicPost(id uint) (*models.BlogPost, error)
	CreatePost(req models.CreateBlogPostRequest, authorID uint) (*models.BlogPost, error)
	UpdatePost(id uint, req models.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(id uint) error
}

type blogService struct {
	blogRepo repositories.BlogRepository
	validate StructValidator
}

func NewBlogService(blogRepo repositories.BlogRepository, validate StructValidator) BlogService {
	return &blogService{blogRepo: blogRepo, validate: validate}
}

func (s *blogService) GetPublicPosts(params models.BlogListParams) ([]models.BlogPost, int64, error) {
	return s.blogRepo.GetList(params, true)
}

func (s *blogService) GetPublicPost(id uint) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	// Drafts are invisible to the public surface.
	if post.Status != models.StatusPublished {
		return nil, models.ErrNotFound
	}

	return post, nil
}

func (s *blogService) CreatePost(req models.CreateBlogPostRequest, authorID uint) (*models.BlogPost, error) {
	fieldErrors := s.validate.ValidateStruct(&req)
	fieldErrors.Merge(validateBlogInput(strings.TrimSpace(req.Title), strings.TrimSpace(req.Content), req.Status))
	if fieldErrors.Any() {
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	post := &models.BlogPost{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		AuthorID:      authorID,
		// Admin-authored posts go live immediately, whatever status the
		// caller submitted.
		Status: models.StatusPublished,
	}

	if err := s.blogRepo.Create(post); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(post.ID)
}

func (s *blogService) UpdatePost(id uint, req models.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	fieldErrors := s.validate.ValidateStruct(&req)
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		fieldErrors.Add("title", "This field may not be blank.")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		fieldErrors.Add("content", "This field may not be blank.")
	}
	if req.Status != nil && !models.ValidPostStatus(*req.Status) {
		fieldErrors.Add("status", "Status must be one of: draft, published.")
	}
	if fieldErrors.Any() {
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	if err := s.blogRepo.Update(post); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(id)
}

func (s *blogService) DeletePost(id uint) error {
	if _, err := s.blogRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	return s.blogRepo.Delete(id)
}

func validateBlogInput(title, content string, status models.PostStatus) models.FieldErrors {
	fieldErrors := models.FieldErrors{}

	if title == "" {
		fieldErrors.Add("title", "This field may not be blank.")
	}
	if content == "" {
		fieldErrors.Add("content", "This field may not be blank.")
	}
	if status != "" && !models.ValidPostStatus(status) {
		fieldErrors.Add("status", "Status must be one of: draft, published.")
	}

	return fieldErrors
}
