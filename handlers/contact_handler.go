package handlers

import (
	"errors"
	"strconv"

	"clickexpress-cms/helper"
	"clickexpress-cms/models"
	"clickexpress-cms/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService services.ContactService
	Helper         *helper.HTTPHelper
}

func NewContactHandler(contactService services.ContactService, h *helper.HTTPHelper) *ContactHandler {
	return &ContactHandler{contactService: contactService, Helper: h}
}

func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req models.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	message, err := h.contactService.CreateMessage(c.Request.Context(), req)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			h.Helper.SendValidationError(c, validationErr.Details)
			return
		}
		h.Helper.SendBadRequest(c, "Failed to send contact message")
		return
	}

	h.Helper.SendCreated(c, "Your message has been sent successfully!", message)
}

func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	subscriber, err := h.contactService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			h.Helper.SendValidationError(c, validationErr.Details)
			return
		}
		h.Helper.SendBadRequest(c, "Failed to subscribe")
		return
	}

	h.Helper.SendCreated(c, "Successfully subscribed to newsletter!", subscriber)
}

func (h *ContactHandler) GetMessages(c *gin.Context) {
	var params models.ContactListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}

	messages, total, err := h.contactService.GetMessages(params)
	if err != nil {
		h.Helper.SendBadRequest(c, "Failed to load contact messages")
		return
	}

	h.Helper.SendList(c, messages, total)
}

func (h *ContactHandler) GetMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Contact message not found")
		return
	}

	message, err := h.contactService.GetMessage(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Contact message not found")
		return
	}

	h.Helper.SendSuccess(c, "", message)
}

func (h *ContactHandler) UpdateMessageStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Contact message not found")
		return
	}

	var req models.UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	message, err := h.contactService.UpdateMessageStatus(uint(id), req.Status)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrNotFound):
			h.Helper.SendNotFoundError(c, "Contact message not found")
		case errors.As(err, &validationErr):
			h.Helper.SendValidationError(c, validationErr.Details)
		default:
			h.Helper.SendBadRequest(c, "Failed to update status")
		}
		return
	}

	h.Helper.SendSuccess(c, "", message)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Contact message not found")
		return
	}

	if err := h.contactService.DeleteMessage(uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "Contact message not found")
			return
		}
		h.Helper.SendBadRequest(c, "Failed to delete contact message")
		return
	}

	h.Helper.SendSuccess(c, "Contact message deleted successfully", nil)
}

func (h *ContactHandler) GetSubscribers(c *gin.Context) {
	subscribers, total, err := h.contactService.GetSubscribers()
	if err != nil {
		h.Helper.SendBadRequest(c, "Failed to load subscribers")
		return
	}

	h.Helper.SendList(c, subscribers, total)
}
