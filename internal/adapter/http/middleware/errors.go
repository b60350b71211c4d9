package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
)

// ErrorHandler renders the last error a handler attached with c.Error as a
// translated JSON error. Operational errors log at warn, the rest at error
// with a stack trace.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := ToAppError(c.Errors.Last().Err)
		fields := []zap.Field{
			zap.Int("status", appErr.StatusCode),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Error(appErr),
		}
		if appErr.Operational {
			zap.L().Warn("request failed", fields...)
		} else {
			zap.L().Error("request failed", append(fields, zap.Stack("stack"))...)
		}

		c.AbortWithStatusJSON(appErr.StatusCode, apierrors.RenderAppError(appErr, GetLang(c)))
	}
}

// Recovery turns a panic into a non-operational internal server error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(
			http.StatusInternalServerError,
			apierrors.Render(http.StatusInternalServerError, apierrors.MsgInternalServerError, GetLang(c)),
		)
	})
}

// NotFound answers unknown routes with the JSON error envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierrors.Render(http.StatusNotFound, apierrors.MsgRouteNotFound, GetLang(c)))
	}
}

// ToAppError maps domain errors to their HTTP rendering.
func ToAppError(err error) *apierrors.AppError {
	var appErr *apierrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return apierrors.NewNotFoundError(apierrors.MsgTaskNotFound, err)
	case errors.Is(err, domain.ErrListNotFound):
		return apierrors.NewNotFoundError(apierrors.MsgListNotFound, err)
	case errors.Is(err, domain.ErrTrashItemNotFound):
		return apierrors.NewNotFoundError(apierrors.MsgTrashItemNotFound, err)
	case errors.Is(err, domain.ErrTrashEmpty):
		return apierrors.NewNotFoundError(apierrors.MsgTrashEmpty, err)
	case errors.Is(err, domain.ErrPresetNotFound):
		return apierrors.NewNotFoundError(apierrors.MsgPresetNotFound, err)
	case errors.Is(err, domain.ErrTagNotFound):
		return apierrors.NewNotFoundError(apierrors.MsgTagNotFound, err)
	case errors.Is(err, domain.ErrLinkNotFound):
		return apierrors.NewNotFoundError(apierrors.MsgLinkNotFound, err)
	case errors.Is(err, domain.ErrAttachmentNotFound):
		return apierrors.NewNotFoundError(apierrors.MsgAttachmentNotFound, err)
	case errors.Is(err, domain.ErrDuplicatePresetName):
		return apierrors.NewConflictError(apierrors.MsgPresetNameTaken, err)
	case errors.Is(err, domain.ErrAttachmentTooLarge):
		return apierrors.NewValidationError(apierrors.MsgAttachmentTooLarge, err)
	case errors.Is(err, domain.ErrDateAndList):
		return apierrors.NewValidationError(apierrors.MsgDateAndList, err)
	case errors.Is(err, domain.ErrMoveTarget):
		return apierrors.NewValidationError(apierrors.MsgInvalidMoveTarget, err)
	case errors.Is(err, domain.ErrInvalidSettings):
		return apierrors.NewValidationError(apierrors.MsgInvalidSettings, err)
	case errors.Is(err, domain.ErrInvalidOrder):
		return apierrors.NewValidationError(apierrors.MsgInvalidOrder, err)
	case errors.Is(err, domain.ErrInvalidRange):
		return apierrors.NewValidationError(apierrors.MsgInvalidDate, err)
	case errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrInvalidURL):
		return apierrors.NewValidationError(apierrors.MsgInvalidPayload, err)
	}
	return apierrors.NewInternalServerError(err)
}
