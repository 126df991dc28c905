package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

const internalErrorMessage = "Error interno del servidor"

// RespondSuccess writes data in a success envelope
func RespondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Success(data))
}

// RespondError writes a failure envelope and stops the handler chain
func RespondError(c *gin.Context, status int, messages ...string) {
	c.AbortWithStatusJSON(status, dto.Failure(messages...))
}

// HandleAPIError maps err onto a status code and a failure envelope. Errors
// outside the taxonomy are logged and reported with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, validationErr.Messages()...)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		RespondError(c, http.StatusNotFound, publicMessage(err, "Recurso no encontrado"))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrUploadRejected, apperrors.ErrConflict, apperrors.ErrValidationFailed):
		RespondError(c, http.StatusBadRequest, publicMessage(err, "Solicitud inválida"))
	case apperrors.Is(err, apperrors.ErrInvalidCredentials, apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid, apperrors.ErrTokenNotFound):
		RespondError(c, http.StatusUnauthorized, publicMessage(err, "No autorizado"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		RespondError(c, http.StatusForbidden, publicMessage(err, "No tiene permisos para realizar esta acción"))
	case errors.Is(err, apperrors.ErrMailUnavailable):
		RespondError(c, http.StatusServiceUnavailable, publicMessage(err, "Servicio de correo no disponible"))
	default:
		logger.FromContext(c.Request.Context()).Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		RespondError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

func publicMessage(err error, fallback string) string {
	if msg, ok := apperrors.PublicMessage(err); ok {
		return msg
	}
	return fallback
}
