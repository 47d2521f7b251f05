package handlers

import (
	"errors"
	"strconv"

	"clickexpress-cms/helper"
	"clickexpress-cms/models"
	"clickexpress-cms/services"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryService services.GalleryService
	Helper         *helper.HTTPHelper
}

func NewGalleryHandler(galleryService services.GalleryService, h *helper.HTTPHelper) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, Helper: h}
}

func (h *GalleryHandler) GetImages(c *gin.Context) {
	var params models.GalleryListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}

	images, total, err := h.galleryService.GetImages(params)
	if err != nil {
		h.Helper.SendBadRequest(c, "Failed to load gallery images")
		return
	}

	h.Helper.SendList(c, images, total)
}

func (h *GalleryHandler) GetImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Gallery image not found")
		return
	}

	image, err := h.galleryService.GetImage(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Gallery image not found")
		return
	}

	h.Helper.SendSuccess(c, "", image)
}

func (h *GalleryHandler) CreateImage(c *gin.Context) {
	var req models.CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	image, err := h.galleryService.CreateImage(req)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			h.Helper.SendValidationError(c, validationErr.Details)
			return
		}
		h.Helper.SendBadRequest(c, "Failed to create gallery image")
		return
	}

	h.Helper.SendCreated(c, "", image)
}

func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Gallery image not found")
		return
	}

	var req models.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	image, err := h.galleryService.UpdateImage(uint(id), req)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrNotFound):
			h.Helper.SendNotFoundError(c, "Gallery image not found")
		case errors.As(err, &validationErr):
			h.Helper.SendValidationError(c, validationErr.Details)
		default:
			h.Helper.SendBadRequest(c, "Update failed")
		}
		return
	}

	h.Helper.SendSuccess(c, "", image)
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Gallery image not found")
		return
	}

	if err := h.galleryService.DeleteImage(uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Gallery image not found")
			return
		}
		h.Helper.SendBadRequest(c, "Failed to delete gallery image")
		return
	}

	h.Helper.SendSuccess(c, "Gallery image deleted successfully", nil)
}
