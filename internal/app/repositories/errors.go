package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/registro-academico/internal/pkg/dberrors"
)

var (
	// ErrNotFound is returned when no row matches the requested id or key
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate wraps unique violations
	ErrDuplicate = errors.New("duplicate value")
	// ErrInvalidReference wraps foreign keys pointing at missing rows
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrReferenced is returned when deleting a row other rows still point at
	ErrReferenced = errors.New("record is referenced by other records")
	// ErrValueTooLong is returned when a value does not fit its column
	ErrValueTooLong = errors.New("value too long for column")
)

// ConstraintError names the column a database constraint rejected
type ConstraintError struct {
	Table string
	Field string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Table, e.Field, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

type writeOp int

const (
	opWrite writeOp = iota
	opDelete
)

// translate maps PostgreSQL constraint errors onto repository errors
func translate(err error, table string, op writeOp) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsUniqueViolation(err):
		return &ConstraintError{Table: table, Field: dberrors.ConstraintField(err, table), Err: ErrDuplicate}
	case dberrors.IsForeignKeyViolation(err) && op == opDelete:
		return ErrReferenced
	case dberrors.IsForeignKeyViolation(err):
		return &ConstraintError{Table: table, Field: dberrors.ConstraintField(err, table), Err: ErrInvalidReference}
	case dberrors.IsValueTooLong(err):
		return fmt.Errorf("%s: %w", table, ErrValueTooLong)
	default:
		return err
	}
}

func translateNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
