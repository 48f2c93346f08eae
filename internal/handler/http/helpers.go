package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{Success: false, ErrorMessage: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, dto.Response{Success: true, Payload: data})
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	SuccessHandler(c, statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// UsecaseErrorHandler maps a usecase error onto a status code. Unclassified errors are
// answered with fallback so internal details do not leak.
func UsecaseErrorHandler(c *gin.Context, err error, fallback string) {
	status, message := classify(err, fallback)
	ErrorHandler(c, status, message)
}

func classify(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperror.ErrUpload):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized, "invalid credentials"
	default:
		return http.StatusInternalServerError, fallback
	}
}
