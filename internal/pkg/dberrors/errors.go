package dberrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes used by the repositories
const (
	UniqueViolation           = "23505"
	ForeignKeyViolation       = "23503"
	StringDataRightTruncation = "22001"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports a unique_violation on any constraint.
func IsUniqueViolation(err error) bool {
	return hasCode(err, UniqueViolation)
}

// IsForeignKeyViolation reports a foreign_key_violation on any constraint.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, ForeignKeyViolation)
}

// IsValueTooLong reports a value wider than its column
func IsValueTooLong(err error) bool {
	return hasCode(err, StringDataRightTruncation)
}

// ConstraintField derives the offending column from a constraint named with
// the PostgreSQL defaults, <table>_<columns>_key / <table>_<column>_fkey.
// For composite keys the last column is returned.
func ConstraintField(err error, table string) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.ConstraintName == "" {
		return ""
	}

	name := strings.TrimPrefix(pgErr.ConstraintName, table+"_")
	for _, suffix := range []string{"_fkey", "_key", "_idx"} {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}

	// estudiante_id_periodo_id -> periodo_id
	if idx := strings.LastIndex(name, "_id_"); idx >= 0 {
		name = name[idx+len("_id_"):]
	}
	return name
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
