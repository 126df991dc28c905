package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizer_Policies(t *testing.T) {
	a, err := NewAuthorizer()
	require.NoError(t, err)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{"administrador", "usuario", ActionWrite, true},
		{"administrador", "rol", ActionRead, true},
		{"docente", "nota", ActionWrite, true},
		{"docente", "materia", ActionRead, true},
		{"docente", "materia", ActionWrite, false},
		{"docente", "usuario", ActionRead, false},
		{"docente", "imagen_estudiante", ActionWrite, false},
		{"estudiante", "nota", ActionRead, true},
		{"estudiante", "nota", ActionWrite, false},
		{"estudiante", "imagen_estudiante", ActionWrite, true},
		{"estudiante", "rol", ActionRead, false},
		{"invitado", "carrera", ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			got, err := a.Allowed(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, ActionRead, ActionFor(http.MethodGet))
	assert.Equal(t, ActionWrite, ActionFor(http.MethodPost))
	assert.Equal(t, ActionWrite, ActionFor(http.MethodPut))
	assert.Equal(t, ActionWrite, ActionFor(http.MethodDelete))
}
