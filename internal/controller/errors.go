package controller

import (
	"errors"
	"net/http"

	"skillforge_backend/internal/quiz"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service and domain errors onto the envelope so
// every controller reports failures the same way.
func respondServiceError(ctx *gin.Context, err error) {
	var validationErr *quiz.ValidationError
	var notFoundErr *quiz.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		util.BadRequest(ctx, validationErr.Error())
	case errors.As(err, &notFoundErr):
		util.Error(ctx, http.StatusNotFound, notFoundErr.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrQuizNotAssigned):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials), errors.Is(err, util.ErrAccountDisabled):
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrMaterialNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
