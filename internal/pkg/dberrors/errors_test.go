package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestViolationChecks(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "carreras_nombre_key"})
	fk := &pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "estudiantes_carrera_id_fkey"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsDuplicateConstraintError(unique, "carreras_nombre_key"))
	assert.False(t, IsDuplicateConstraintError(unique, "carreras_pkey"))
	assert.False(t, IsUniqueViolation(errors.New("boom")))

	tooLong := fmt.Errorf("insert: %w", &pgconn.PgError{Code: StringDataRightTruncation})
	assert.True(t, IsValueTooLong(tooLong))
	assert.False(t, IsValueTooLong(unique))
}

func TestConstraintField(t *testing.T) {
	tests := []struct {
		table      string
		constraint string
		want       string
	}{
		{"carreras", "carreras_nombre_key", "nombre"},
		{"estudiantes", "estudiantes_carrera_id_fkey", "carrera_id"},
		{"matriculas", "matriculas_estudiante_id_periodo_id_key", "periodo_id"},
		{"docentes", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := &pgconn.PgError{Code: UniqueViolation, ConstraintName: tt.constraint}
			assert.Equal(t, tt.want, ConstraintField(err, tt.table))
		})
	}

	assert.Empty(t, ConstraintField(errors.New("not postgres"), "carreras"))
}
