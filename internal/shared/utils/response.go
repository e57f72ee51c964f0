package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/shared/errors"
)

const genericFailureMessage = "An unexpected error occurred"

// JSONResponse writes data as the whole response body, without an envelope.
func JSONResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends 201 with no body.
func CreatedResponse(c *gin.Context) {
	c.Status(http.StatusCreated)
}

// ErrorResponse sends a plain text error body.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

// ErrorResponseWithError maps err onto a status and a plain text message.
// Storage and unknown errors never expose their cause.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ErrorResponse(c, http.StatusInternalServerError, genericFailureMessage)
		return
	}

	switch appErr.Type {
	case errors.ErrorTypeStorage, errors.ErrorTypeInternal:
		ErrorResponse(c, appErr.Code, genericFailureMessage)
	default:
		ErrorResponse(c, appErr.Code, appErr.Message)
	}
}
