package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"github.com/yigit/registro-academico/internal/pkg/filestorage"
)

// ImageOwner is a table whose rows carry a profile image
type ImageOwner interface {
	GetImage(ctx context.Context, id int64) (*repositories.ImageRef, error)
	SetImage(ctx context.Context, id int64, name string) error
}

// ImageService replaces profile images of teachers and students
type ImageService interface {
	Upload(ctx context.Context, caller *models.User, owner ImageOwner, label string, id int64, fh *multipart.FileHeader) (*dto.ImageResponse, error)
}

type imageServiceImpl struct {
	storage  filestorage.ImageStorage
	maxBytes int64
	now      func() time.Time
	logger   zerolog.Logger
}

// NewImageService creates a new ImageService
func NewImageService(storage filestorage.ImageStorage, maxBytes int64, logger zerolog.Logger) ImageService {
	return &imageServiceImpl{
		storage:  storage,
		maxBytes: maxBytes,
		now:      time.Now,
		logger:   logger,
	}
}

// Upload validates the file, stores it under a fresh name, points the row at
// it and then removes the previous image. Only the account linked to the row,
// or an administrator, may replace it. A failure after the file was written
// removes the new file so no orphan is left behind.
func (s *imageServiceImpl) Upload(ctx context.Context, caller *models.User, owner ImageOwner, label string, id int64, fh *multipart.FileHeader) (*dto.ImageResponse, error) {
	ref, err := owner.GetImage(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("No se encontró %s con id %d", label, id))
		}
		return nil, fmt.Errorf("failed to load current image: %w", err)
	}

	if !ownsProfile(caller, ref) {
		s.logger.Warn().Int64("id", id).Int64("callerID", callerID(caller)).Msg("Image upload refused: not the profile owner")
		return nil, apperrors.NewForbiddenError("Solo puede cambiar la imagen de su propio perfil")
	}

	ext, err := filestorage.InspectImage(fh, s.maxBytes)
	if err != nil {
		return nil, err
	}
	previous := ref.Image

	name := filestorage.ImageName(id, ext, s.now())

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	if _, err := s.storage.Save(name, f); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if !s.storage.Exists(name) {
		return nil, fmt.Errorf("stored image %s is missing", name)
	}

	if err := owner.SetImage(ctx, id, name); err != nil {
		if delErr := s.storage.Delete(name); delErr != nil {
			s.logger.Error().Err(delErr).Str("file", name).Msg("Failed to remove image after update failure")
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("No se encontró %s con id %d", label, id))
		}
		return nil, fmt.Errorf("failed to update image reference: %w", err)
	}

	if previous != nil && *previous != "" && *previous != name {
		if err := s.storage.Delete(*previous); err != nil {
			s.logger.Warn().Err(err).Str("file", *previous).Msg("Failed to remove previous image")
		}
	}

	s.logger.Info().Int64("id", id).Str("file", name).Msg("Profile image replaced")
	return &dto.ImageResponse{ID: id, Image: name, URL: s.storage.URL(name)}, nil
}

func ownsProfile(caller *models.User, ref *repositories.ImageRef) bool {
	if caller == nil {
		return false
	}
	if caller.RoleName == models.RoleAdmin {
		return true
	}
	return ref.UserID != nil && *ref.UserID == caller.ID
}

func callerID(caller *models.User) int64 {
	if caller == nil {
		return 0
	}
	return caller.ID
}
