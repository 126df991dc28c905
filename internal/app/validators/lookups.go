package validators

import (
	"context"
	"strings"

	"github.com/yigit/registro-academico/internal/pkg/validation"
)

// Checker answers existence questions on one table
type Checker interface {
	ExistsWhere(ctx context.Context, where map[string]any, excludeID int64) (bool, error)
}

// existsByID checks that the integer value is the id of a row
func existsByID(c Checker) validation.LookupFunc {
	return func(ctx context.Context, value any, _ validation.Input) (bool, error) {
		return c.ExistsWhere(ctx, map[string]any{"id": value}, 0)
	}
}

// existsBy checks that some row has value in column
func existsBy(c Checker, column string) validation.LookupFunc {
	return func(ctx context.Context, value any, _ validation.Input) (bool, error) {
		return c.ExistsWhere(ctx, map[string]any{column: value}, 0)
	}
}

// takenBy reports whether another row already has value in column. On editar
// the row being edited, named by the id query parameter, is ignored.
func takenBy(c Checker, column string) validation.LookupFunc {
	return func(ctx context.Context, value any, in validation.Input) (bool, error) {
		if s, ok := value.(string); ok {
			if norm, ok := storedForm[column]; ok {
				value = norm(s)
			}
		}
		return c.ExistsWhere(ctx, map[string]any{column: value}, editedID(in))
	}
}

// storedForm applies the normalization a column's value gets before it is
// written, so a lookup compares like with like.
var storedForm = map[string]func(string) string{
	"correo": func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	"codigo": func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) },
}

func editedID(in validation.Input) int64 {
	id, ok := in.Int(validation.SourceQuery, "id")
	if !ok {
		return 0
	}
	return id
}
