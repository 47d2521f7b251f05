package handlers

import (
	"errors"
	"net/http"

	"clickexpress-cms/helper"
	"clickexpress-cms/models"
	"clickexpress-cms/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService services.UploadService
	Helper        *helper.HTTPHelper
}

func NewUploadHandler(uploadService services.UploadService, h *helper.HTTPHelper) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, Helper: h}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.Helper.SendError(c, http.StatusBadRequest, helper.CodeValidationError, "No image file provided", nil)
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = "gallery"
	}

	result, err := h.uploadService.UploadImage(fileHeader, category)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			h.Helper.SendValidationError(c, validationErr.Details)
			return
		}
		h.Helper.SendUploadError(c, err)
		return
	}

	h.Helper.SendCreated(c, "", result)
}
