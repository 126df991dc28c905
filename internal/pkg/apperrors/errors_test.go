package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Messages(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "nombre", Message: "El campo es obligatorio"},
		FieldError{Message: "Cuerpo inválido"},
	)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"nombre: El campo es obligatorio", "Cuerpo inválido"}, verr.Messages())
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCustomError_WrapsSentinel(t *testing.T) {
	err := fmt.Errorf("service: %w", NewResourceNotFoundError("No se encontró la carrera con id 3"))

	assert.ErrorIs(t, err, ErrResourceNotFound)
	msg, ok := PublicMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "No se encontró la carrera con id 3", msg)
}

func TestPublicMessage_PlainErrors(t *testing.T) {
	_, ok := PublicMessage(errors.New("pq: connection refused"))
	assert.False(t, ok)

	_, ok = PublicMessage(NewCustomError(ErrConflict, ""))
	assert.False(t, ok)
}

func TestIs(t *testing.T) {
	err := NewUploadError("muy grande")
	assert.True(t, Is(err, ErrBadRequest, ErrUploadRejected))
	assert.False(t, Is(err, ErrBadRequest, ErrConflict))
}
