package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// Allowed image content types and the extension stored for each
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// InspectImage checks an uploaded file before anything is written to disk: it
// must fit maxBytes and its sniffed content must be JPEG or PNG. The client
// supplied name and content type are not trusted. Returns the extension to
// store the file with.
func InspectImage(fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh == nil {
		return "", apperrors.NewUploadError("Debe adjuntar una imagen en el campo imagen")
	}
	if fh.Size <= 0 {
		return "", apperrors.NewUploadError("La imagen está vacía")
	}
	if fh.Size > maxBytes {
		return "", apperrors.NewUploadError(fmt.Sprintf("La imagen supera el tamaño máximo de %d KB", maxBytes/1024))
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	return DetectImageType(f)
}

// DetectImageType sniffs r and returns the extension for an allowed image type
func DetectImageType(r io.Reader) (string, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to detect file type: %w", err)
	}

	for allowed, ext := range allowedImageTypes {
		if mtype.Is(allowed) {
			return ext, nil
		}
	}

	return "", apperrors.NewUploadError("Solo se permiten imágenes jpeg, jpg o png")
}

// ImageName builds a collision resistant file name:
// <unix millis>-<random>-<owner id><ext>
func ImageName(ownerID int64, ext string, now time.Time) string {
	random := uuid.New().String()[:8]
	return fmt.Sprintf("%d-%s-%d%s", now.UnixMilli(), random, ownerID, ext)
}
