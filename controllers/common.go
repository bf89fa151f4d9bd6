package controllers

import (
	"revsplit/errors"
	"revsplit/response"

	"github.com/gin-gonic/gin"
)

// handleServiceError map AppError code sang HTTP response tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodePermissionDenied:
		response.Forbidden(c)
	case errors.ErrCodeDBNotFound, errors.ErrCodeEventNotFound,
		errors.ErrCodeConfigNotFound, errors.ErrCodeUserNotFound:
		response.NotFound(c)
	case errors.ErrCodeDBError:
		response.ServerError(c)
	case errors.ErrCodeDBDuplicate:
		response.Conflict(c)
	case errors.ErrCodeInvalidStateTransition:
		response.BadRequest(c, appErr.Message)
	default:
		response.ValidationError(c, appErr.Message)
	}
}
