package services

import (
	"strings"
	"testing"

	"clickexpress-cms/helper"
	"clickexpress-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBlogRepo struct {
	posts  map[uint]*models.BlogPost
	nextID uint
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: map[uint]*models.BlogPost{}, nextID: 1}
}

func (r *fakeBlogRepo) Create(post *models.BlogPost) error {
	post.ID = r.nextID
	r.nextID++
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) GetByID(id uint) (*models.BlogPost, error) {
	if p, ok := r.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBlogRepo) GetList(params models.BlogListParams, isPublic bool) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	for _, p := range r.posts {
		if isPublic && p.Status != models.StatusPublished {
			continue
		}
		posts = append(posts, *p)
	}
	return posts, int64(len(posts)), nil
}

func (r *fakeBlogRepo) Update(post *models.BlogPost) error {
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) Delete(id uint) error {
	delete(r.posts, id)
	return nil
}

func TestCreatePostForcesPublished(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), helper.NewHTTPHelper())

	post, err := svc.CreatePost(models.CreateBlogPostRequest{
		Title:   "Hello",
		Content: "Body",
		Status:  models.StatusDraft,
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPublished, post.Status)
	assert.Equal(t, uint(7), post.AuthorID)
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), helper.NewHTTPHelper())

	_, err := svc.CreatePost(models.CreateBlogPostRequest{Title: "  ", Content: "", Status: "archived"}, 1)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	assert.Contains(t, validationErr.Details, "title")
	assert.Contains(t, validationErr.Details, "content")
	assert.Contains(t, validationErr.Details, "status")
}

func TestCreatePostReportsTagAndDomainFailuresTogether(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), helper.NewHTTPHelper())

	// Over-long title violates a tag rule, blank content a domain rule;
	// one response must carry both.
	_, err := svc.CreatePost(models.CreateBlogPostRequest{
		Title:   strings.Repeat("t", 201),
		Content: "   ",
	}, 1)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	assert.Contains(t, validationErr.Details, "title")
	assert.Contains(t, validationErr.Details, "content")
}

func TestPublicPostHidesDrafts(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, helper.NewHTTPHelper())

	// Seeded directly at the storage layer with draft status.
	require.NoError(t, repo.Create(&models.BlogPost{Title: "Draft", Content: "x", Status: models.StatusDraft}))
	require.NoError(t, repo.Create(&models.BlogPost{Title: "Live", Content: "x", Status: models.StatusPublished}))

	_, err := svc.GetPublicPost(1)
	assert.ErrorIs(t, err, models.ErrNotFound)

	post, err := svc.GetPublicPost(2)
	require.NoError(t, err)
	assert.Equal(t, "Live", post.Title)

	posts, total, err := svc.GetPublicPosts(models.BlogListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, "Live", posts[0].Title)
}

func TestUpdatePostPartialMerge(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, helper.NewHTTPHelper())

	created, err := svc.CreatePost(models.CreateBlogPostRequest{
		Title:   "Original",
		Excerpt: "Short",
		Content: "Body",
	}, 1)
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.UpdatePost(created.ID, models.UpdateBlogPostRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Short", updated.Excerpt)
	assert.Equal(t, "Body", updated.Content)
}

func TestUpdatePostValidation(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, helper.NewHTTPHelper())

	created, err := svc.CreatePost(models.CreateBlogPostRequest{Title: "T", Content: "C"}, 1)
	require.NoError(t, err)

	badStatus := models.PostStatus("archived")
	_, err = svc.UpdatePost(created.ID, models.UpdateBlogPostRequest{Status: &badStatus})
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details, "status")
}

func TestUpdateAndDeleteMissingPost(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo(), helper.NewHTTPHelper())

	title := "x"
	_, err := svc.UpdatePost(42, models.UpdateBlogPostRequest{Title: &title})
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, svc.DeletePost(42), models.ErrNotFound)
}
