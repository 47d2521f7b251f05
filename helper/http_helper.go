package helper

import (
	"net/http"

	"clickexpress-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeUploadError     = "UPLOAD_ERROR"
)

// ErrorBody ...
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Response is the envelope shared by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Total   *int64      `json:"total,omitempty"`
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

// ValidateStruct ...
// Run the tag-level rules on a request struct and aggregate the failures
// as field -> messages.
func (u *HTTPHelper) ValidateStruct(s interface{}) models.FieldErrors {
	fieldErrors := models.FieldErrors{}

	err := u.Validate.Struct(s)
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors.Add("non_field_errors", err.Error())
		return fieldErrors
	}

	translations := validationErrors.Translate(u.Translator)
	for _, fieldError := range validationErrors {
		errKey := Underscore(fieldError.StructField())
		fieldErrors.Add(errKey, translations[fieldError.Namespace()])
	}

	return fieldErrors
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendList ...
// Send a full list plus its total count.
func (u *HTTPHelper) SendList(c *gin.Context, data interface{}, total int64) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Total:   &total,
	})
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, status int, code string, message string, details interface{}) {
	c.JSON(status, Response{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// SendValidationError ...
// Send the aggregated field-level failures to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, details models.FieldErrors) {
	u.SendError(c, http.StatusBadRequest, CodeValidationError, "Invalid input data", details)
}

// SendBadRequest ...
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendError(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// SendNotFoundError ...
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.SendError(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// SendUnauthorizedError ...
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendError(c, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

// SendInvalidTokenError ...
func (u *HTTPHelper) SendInvalidTokenError(c *gin.Context) {
	u.SendError(c, http.StatusBadRequest, CodeInvalidToken, "Invalid token", nil)
}

// SendUploadError ...
func (u *HTTPHelper) SendUploadError(c *gin.Context, err error) {
	u.SendError(c, http.StatusInternalServerError, CodeUploadError, err.Error(), nil)
}
