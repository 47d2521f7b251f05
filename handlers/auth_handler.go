package handlers

import (
	"errors"

	"clickexpress-cms/helper"
	"clickexpress-cms/models"
	"clickexpress-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	if fieldErrors := h.Helper.ValidateStruct(&req); fieldErrors.Any() {
		h.Helper.SendValidationError(c, fieldErrors)
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials),
			errors.Is(err, models.ErrAccountDisabled),
			errors.Is(err, models.ErrInsufficientPrivilege):
			// Auth failures surface as a 400 with a non-field error, not
			// a 401, so the login form can render them inline.
			fieldErrors := models.FieldErrors{}
			fieldErrors.Add("non_field_errors", err.Error())
			h.Helper.SendValidationError(c, fieldErrors)
		default:
			h.Helper.SendBadRequest(c, "Login failed")
		}
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req models.LogoutRequest
	// An empty body means "no refresh token", which logout accepts.
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.Logout(req.Refresh); err != nil {
		h.Helper.SendInvalidTokenError(c)
		return
	}

	h.Helper.SendSuccess(c, "Logged out successfully", nil)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	if fieldErrors := h.Helper.ValidateStruct(&req); fieldErrors.Any() {
		h.Helper.SendValidationError(c, fieldErrors)
		return
	}

	token, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, "Invalid or expired refresh token")
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{"token": token})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context")
		return
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.Helper.SendUnauthorizedError(c, "User not found")
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{"user": user.Public()})
}
