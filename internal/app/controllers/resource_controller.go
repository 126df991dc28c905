package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/app/services"
	"github.com/yigit/registro-academico/internal/middleware"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// Request is a guardar/editar payload of entity T
type Request[T any] interface {
	ToModel() *T
}

// ResourceController serves the listar, busqueda_id, guardar, editar,
// eliminar and busqueda routes of one entity.
type ResourceController[T any, R Request[T]] struct {
	service services.CrudService[T]
}

// NewResourceController creates a new ResourceController
func NewResourceController[T any, R Request[T]](service services.CrudService[T]) *ResourceController[T, R] {
	return &ResourceController[T, R]{service: service}
}

// List returns every record
// @Summary List records
// @Description Lists every record of the entity ordered by id
// @Tags recursos
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity" Enums(rol, usuario, carrera, docente, estudiante, materia, periodo, matricula, actividad, asistencia, nota)
// @Success 200 {object} dto.Envelope "Records"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Failure 403 {object} dto.Envelope "Role not allowed"
// @Failure 500 {object} dto.Envelope "Internal server error"
// @Router /{entidad}/listar [get]
func (c *ResourceController[T, R]) List(ctx *gin.Context) {
	items, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, items)
}

// GetByID returns one record
// @Summary Get a record
// @Tags recursos
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity"
// @Param id query int true "Record id" minimum(1)
// @Success 200 {object} dto.Envelope "Record"
// @Failure 400 {object} dto.Envelope "Invalid id"
// @Failure 404 {object} dto.Envelope "Record not found"
// @Router /{entidad}/busqueda_id [get]
func (c *ResourceController[T, R]) GetByID(ctx *gin.Context) {
	id, err := queryID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	item, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, item)
}

// Create stores a new record
// @Summary Create a record
// @Description Every field is validated and all failures are reported together
// @Tags recursos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity"
// @Param request body object true "Record fields"
// @Success 201 {object} dto.Envelope "Created record"
// @Failure 400 {object} dto.Envelope "Validation failures, one message per field"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Failure 403 {object} dto.Envelope "Role not allowed"
// @Router /{entidad}/guardar [post]
func (c *ResourceController[T, R]) Create(ctx *gin.Context) {
	var req R
	if err := bindBody(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.service.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, created)
}

// Update replaces a record
// @Summary Update a record
// @Tags recursos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity"
// @Param id query int true "Record id" minimum(1)
// @Param request body object true "Record fields"
// @Success 200 {object} dto.Envelope "Updated record"
// @Failure 400 {object} dto.Envelope "Validation failures"
// @Failure 404 {object} dto.Envelope "Record not found"
// @Router /{entidad}/editar [put]
func (c *ResourceController[T, R]) Update(ctx *gin.Context) {
	id, err := queryID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req R
	if err := bindBody(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.service.Update(ctx.Request.Context(), id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, updated)
}

// Delete removes a record and returns it
// @Summary Delete a record
// @Tags recursos
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity"
// @Param id query int true "Record id" minimum(1)
// @Success 200 {object} dto.Envelope "Deleted record"
// @Failure 400 {object} dto.Envelope "Record still referenced"
// @Failure 404 {object} dto.Envelope "Record not found"
// @Router /{entidad}/eliminar [delete]
func (c *ResourceController[T, R]) Delete(ctx *gin.Context) {
	id, err := queryID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	deleted, err := c.service.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, deleted)
}

// SearchByName matches the nombre query parameter against columns
// @Summary Search by name
// @Description Case-insensitive substring search
// @Tags recursos
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity"
// @Param nombre query string true "Text to search"
// @Success 200 {object} dto.Envelope "Matching records"
// @Failure 400 {object} dto.Envelope "Missing search text"
// @Router /{entidad}/busqueda_nombre [get]
func (c *ResourceController[T, R]) SearchByName(columns ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.search(ctx, repositories.Filter{
			Term:        strings.TrimSpace(ctx.Query("nombre")),
			TermColumns: columns,
		})
	}
}

// SearchByDate filters column between desde and the optional hasta
// @Summary Search by date range
// @Tags recursos
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity"
// @Param desde query string true "Start date (YYYY-MM-DD)"
// @Param hasta query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope "Matching records"
// @Failure 400 {object} dto.Envelope "Invalid dates"
// @Router /{entidad}/busqueda_fecha [get]
func (c *ResourceController[T, R]) SearchByDate(column string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		from, err := queryDate(ctx, "desde")
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		to, err := queryDate(ctx, "hasta")
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		f := repositories.Filter{DateColumn: column}
		if from != nil {
			f.From = &from.Time
		}
		if to != nil {
			f.To = &to.Time
		}
		c.search(ctx, f)
	}
}

// SearchBy filters on equality of the given query parameters. Parameters
// listed in ids are identifiers; the rest are compared as lower-cased text
// when named correo and as given otherwise.
// @Summary Search by fields
// @Description All filters are optional; without filters every record is returned
// @Tags recursos
// @Produce json
// @Security BearerAuth
// @Param entidad path string true "Entity"
// @Success 200 {object} dto.Envelope "Matching records"
// @Failure 400 {object} dto.Envelope "Invalid filter values"
// @Router /{entidad}/busqueda [get]
func (c *ResourceController[T, R]) SearchBy(ids []string, texts ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		equals := make(map[string]any)
		for _, name := range ids {
			raw := strings.TrimSpace(ctx.Query(name))
			if raw == "" {
				continue
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				middleware.HandleAPIError(ctx, apperrors.NewFieldError(name, "Debe ser un identificador numérico válido"))
				return
			}
			equals[name] = n
		}
		for _, name := range texts {
			raw := strings.TrimSpace(ctx.Query(name))
			if raw == "" {
				continue
			}
			if name == "correo" {
				raw = strings.ToLower(raw)
			}
			equals[name] = raw
		}

		c.search(ctx, repositories.Filter{Equals: equals})
	}
}

func (c *ResourceController[T, R]) search(ctx *gin.Context, f repositories.Filter) {
	items, err := c.service.Search(ctx.Request.Context(), f)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, items)
}
