package handlers

import (
	"errors"
	"strconv"

	"clickexpress-cms/helper"
	"clickexpress-cms/models"
	"clickexpress-cms/services"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService, h *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{blogService: blogService, Helper: h}
}

func (h *BlogHandler) GetPublicPosts(c *gin.Context) {
	var params models.BlogListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}

	posts, total, err := h.blogService.GetPublicPosts(params)
	if err != nil {
		h.Helper.SendBadRequest(c, "Failed to load blog posts")
		return
	}

	h.Helper.SendList(c, posts, total)
}

func (h *BlogHandler) GetPublicPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Blog post not found")
		return
	}

	post, err := h.blogService.GetPublicPost(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Blog post not found")
		return
	}

	h.Helper.SendSuccess(c, "", post)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	post, err := h.blogService.CreatePost(req, userID.(uint))
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			h.Helper.SendValidationError(c, validationErr.Details)
			return
		}
		h.Helper.SendBadRequest(c, "Failed to create blog post")
		return
	}

	h.Helper.SendCreated(c, "", post)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Blog post not found")
		return
	}

	var req models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	post, err := h.blogService.UpdatePost(uint(id), req)
	if err != nil {
		h.sendUpdateError(c, err, "Blog post not found")
		return
	}

	h.Helper.SendSuccess(c, "", post)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Blog post not found")
		return
	}

	if err := h.blogService.DeletePost(uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Blog post not found")
			return
		}
		h.Helper.SendBadRequest(c, "Failed to delete blog post")
		return
	}

	h.Helper.SendSuccess(c, "Blog post deleted successfully", nil)
}

func (h *BlogHandler) sendUpdateError(c *gin.Context, err error, notFoundMessage string) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		h.Helper.SendNotFoundError(c, notFoundMessage)
	case errors.As(err, &validationErr):
		h.Helper.SendValidationError(c, validationErr.Details)
	default:
		h.Helper.SendBadRequest(c, "Update failed")
	}
}
