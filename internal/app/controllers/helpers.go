// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// queryID reads the id query parameter. Routes validate it beforehand.
func queryID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(ctx.Query("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewFieldError("id", "Debe ser un identificador numérico válido")
	}
	return id, nil
}

// bindBody binds the JSON body cached by the validation middleware
func bindBody(ctx *gin.Context, obj any) error {
	if err := ctx.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		return apperrors.NewBadRequestError("El cuerpo de la solicitud no tiene el formato esperado")
	}
	return nil
}

// queryDate parses an optional YYYY-MM-DD query parameter
func queryDate(ctx *gin.Context, name string) (*models.Date, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, apperrors.NewFieldError(name, "Debe ser una fecha con formato AAAA-MM-DD")
	}
	return &d, nil
}
