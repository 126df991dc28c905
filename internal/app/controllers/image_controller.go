package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registro-academico/internal/app/services"
	"github.com/yigit/registro-academico/internal/middleware"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// multipartOverhead is allowed on top of the image itself for the form framing
const multipartOverhead = 64 << 10

// ImageController uploads teacher and student profile images
type ImageController struct {
	imageService services.ImageService
	teachers     services.ImageOwner
	students     services.ImageOwner
	maxBytes     int64
}

// NewImageController creates a new ImageController
func NewImageController(imageService services.ImageService, teachers, students services.ImageOwner, maxBytes int64) *ImageController {
	return &ImageController{
		imageService: imageService,
		teachers:     teachers,
		students:     students,
		maxBytes:     maxBytes,
	}
}

// UploadTeacherImage replaces a teacher's profile image
// @Summary Upload a teacher profile image
// @Description jpeg or png, at most 1MB. The previous image is removed once the new one is stored.
// @Tags imagenes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id query int true "Teacher id" minimum(1)
// @Param imagen formData file true "Image file"
// @Success 200 {object} dto.Envelope{datos=dto.ImageResponse} "Image stored"
// @Failure 400 {object} dto.Envelope "Missing, oversized or non image file"
// @Failure 403 {object} dto.Envelope "Not the caller's profile"
// @Failure 404 {object} dto.Envelope "Teacher not found"
// @Router /imagen/docente [put]
func (c *ImageController) UploadTeacherImage(ctx *gin.Context) {
	c.upload(ctx, c.teachers, "el docente")
}

// UploadStudentImage replaces a student's profile image
// @Summary Upload a student profile image
// @Description jpeg or png, at most 1MB. The previous image is removed once the new one is stored.
// @Tags imagenes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id query int true "Student id" minimum(1)
// @Param imagen formData file true "Image file"
// @Success 200 {object} dto.Envelope{datos=dto.ImageResponse} "Image stored"
// @Failure 400 {object} dto.Envelope "Missing, oversized or non image file"
// @Failure 403 {object} dto.Envelope "Not the caller's profile"
// @Failure 404 {object} dto.Envelope "Student not found"
// @Router /imagen/estudiante [put]
func (c *ImageController) UploadStudentImage(ctx *gin.Context) {
	c.upload(ctx, c.students, "el estudiante")
}

func (c *ImageController) upload(ctx *gin.Context, owner services.ImageOwner, label string) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrTokenNotFound, "Se requiere un token de acceso"))
		return
	}

	id, err := queryID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxBytes+multipartOverhead)

	fh, err := ctx.FormFile("imagen")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			middleware.HandleAPIError(ctx, apperrors.NewUploadError("La imagen supera el tamaño máximo permitido"))
		case errors.Is(err, http.ErrMissingFile):
			middleware.HandleAPIError(ctx, apperrors.NewUploadError("Debe adjuntar una imagen en el campo imagen"))
		default:
			middleware.HandleAPIError(ctx, apperrors.NewUploadError("La solicitud debe ser multipart/form-data con el campo imagen"))
		}
		return
	}

	result, err := c.imageService.Upload(ctx.Request.Context(), caller, owner, label, id, fh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, result)
}
