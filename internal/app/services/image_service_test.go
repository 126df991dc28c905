package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/mocks"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("imagen", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["imagen"][0]
}

type fakeOwner struct {
	rows   map[int64]*repositories.ImageRef
	setErr error
}

func (o *fakeOwner) GetImage(ctx context.Context, id int64) (*repositories.ImageRef, error) {
	ref, ok := o.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &repositories.ImageRef{UserID: ref.UserID, Image: ref.Image}, nil
}

func (o *fakeOwner) SetImage(ctx context.Context, id int64, name string) error {
	if o.setErr != nil {
		return o.setErr
	}
	o.rows[id].Image = &name
	return nil
}

func ownedBy(userID int64, image *string) *repositories.ImageRef {
	return &repositories.ImageRef{UserID: &userID, Image: image}
}

var (
	profileUser = &models.User{ID: 7, RoleName: models.RoleTeacher}
	otherUser   = &models.User{ID: 8, RoleName: models.RoleTeacher}
	adminUser   = &models.User{ID: 1, RoleName: models.RoleAdmin}
)

func newImageService(storage *mocks.ImageStorage) *imageServiceImpl {
	svc := NewImageService(storage, 1<<20, zerolog.Nop()).(*imageServiceImpl)
	svc.now = func() time.Time { return time.UnixMilli(1718036400000) }
	return svc
}

func TestImageService_UploadReplacesPreviousImage(t *testing.T) {
	storage := mocks.NewImageStorage()
	storage.Files["viejo.png"] = pngPixel
	old := "viejo.png"
	owner := &fakeOwner{rows: map[int64]*repositories.ImageRef{1: ownedBy(7, &old)}}

	resp, err := newImageService(storage).Upload(context.Background(), profileUser, owner, "el docente", 1, fileHeader(t, "foto.png", pngPixel))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Image, "1718036400000-"))
	assert.True(t, strings.HasSuffix(resp.Image, "-1.png"))
	assert.Equal(t, "/imagenes/"+resp.Image, resp.URL)
	assert.Equal(t, resp.Image, *owner.rows[1].Image)
	assert.Contains(t, storage.Files, resp.Image)
	assert.NotContains(t, storage.Files, "viejo.png")
}

func TestImageService_OnlyOwnerOrAdministrator(t *testing.T) {
	tests := []struct {
		name    string
		caller  *models.User
		row     *repositories.ImageRef
		wantErr error
	}{
		{"owner", profileUser, ownedBy(7, nil), nil},
		{"administrator", adminUser, ownedBy(7, nil), nil},
		{"another account", otherUser, ownedBy(7, nil), apperrors.ErrPermissionDenied},
		{"profile without account", profileUser, &repositories.ImageRef{}, apperrors.ErrPermissionDenied},
		{"anonymous", nil, ownedBy(7, nil), apperrors.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := mocks.NewImageStorage()
			owner := &fakeOwner{rows: map[int64]*repositories.ImageRef{1: tt.row}}

			_, err := newImageService(storage).Upload(context.Background(), tt.caller, owner, "el docente", 1, fileHeader(t, "foto.png", pngPixel))
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Len(t, storage.Files, 1)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, storage.Files)
			assert.Nil(t, owner.rows[1].Image)
		})
	}
}

func TestImageService_RejectsNonImages(t *testing.T) {
	storage := mocks.NewImageStorage()
	owner := &fakeOwner{rows: map[int64]*repositories.ImageRef{1: ownedBy(7, nil)}}

	_, err := newImageService(storage).Upload(context.Background(), profileUser, owner, "el docente", 1, fileHeader(t, "foto.png", []byte("#!/bin/sh\necho hola\n")))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUploadRejected)
	assert.Empty(t, storage.Files)
}

func TestImageService_UnknownOwner(t *testing.T) {
	storage := mocks.NewImageStorage()
	owner := &fakeOwner{rows: map[int64]*repositories.ImageRef{}}

	_, err := newImageService(storage).Upload(context.Background(), adminUser, owner, "el estudiante", 9, fileHeader(t, "foto.png", pngPixel))
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "No se encontró el estudiante con id 9", err.Error())
	assert.Empty(t, storage.Files)
}

func TestImageService_FailedUpdateRemovesNewFile(t *testing.T) {
	storage := mocks.NewImageStorage()
	owner := &fakeOwner{rows: map[int64]*repositories.ImageRef{1: ownedBy(7, nil)}, setErr: errors.New("db down")}

	_, err := newImageService(storage).Upload(context.Background(), profileUser, owner, "el docente", 1, fileHeader(t, "foto.png", pngPixel))
	require.Error(t, err)
	assert.Empty(t, storage.Files)
}
