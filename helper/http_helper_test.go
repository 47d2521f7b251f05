package helper

import (
	"testing"

	"clickexpress-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructAggregatesFailures(t *testing.T) {
	h := NewHTTPHelper()

	fieldErrors := h.ValidateStruct(&models.LoginRequest{})
	require.True(t, fieldErrors.Any())
	assert.Contains(t, fieldErrors, "username")
	assert.Contains(t, fieldErrors, "password")
}

func TestValidateStructPasses(t *testing.T) {
	h := NewHTTPHelper()

	fieldErrors := h.ValidateStruct(&models.LoginRequest{Username: "admin", Password: "secret"})
	assert.False(t, fieldErrors.Any())
}

func TestValidateStructTranslatesMessages(t *testing.T) {
	h := NewHTTPHelper()

	fieldErrors := h.ValidateStruct(&models.CreateContactMessageRequest{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Subject: "Hi",
		Message: "A long enough message.",
		Phone:   "123456789012345678901",
	})
	require.Contains(t, fieldErrors, "phone")
	assert.NotEmpty(t, fieldErrors["phone"][0])
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "display_order", Underscore("DisplayOrder"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "featured_image", Underscore("FeaturedImage"))
}
