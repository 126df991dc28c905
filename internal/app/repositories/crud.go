package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registro-academico/internal/db"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

// Filter narrows a Search. Column names are unqualified columns of the
// entity's own table.
type Filter struct {
	Equals map[string]any

	// Term is matched case-insensitively as a substring of any TermColumns
	Term        string
	TermColumns []string

	DateColumn string
	From       *time.Time
	To         *time.Time
}

type scanner interface {
	Scan(dest ...any) error
}

// table describes how an entity maps onto its table
type table[T any] struct {
	name    string
	from    string // FROM clause including joins, defaults to name
	columns []string
	values  func(*T) []any
	selects []string
	scan    func(scanner, *T) error
	orderBy string
}

// crudRepository implements the statements every entity shares. Entity
// repositories embed it and add their own queries.
type crudRepository[T any] struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
	t  table[T]
}

func newCrud[T any](conn db.DBTX, t table[T]) crudRepository[T] {
	if t.from == "" {
		t.from = t.name
	}
	if t.orderBy == "" {
		t.orderBy = t.name + ".id ASC"
	}
	return crudRepository[T]{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		t:  t,
	}
}

func (r crudRepository[T]) col(name string) string {
	return r.t.name + "." + name
}

func (r crudRepository[T]) selectBuilder() squirrel.SelectBuilder {
	return r.sb.Select(r.t.selects...).From(r.t.from)
}

func (r crudRepository[T]) queryRows(ctx context.Context, q squirrel.SelectBuilder) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error building select SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", r.t.name, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error executing select query")
		return nil, fmt.Errorf("error querying %s: %w", r.t.name, err)
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		item := new(T)
		if err := r.t.scan(rows, item); err != nil {
			logger.Error().Err(err).Str("table", r.t.name).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning %s row: %w", r.t.name, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", r.t.name, err)
	}

	return items, nil
}

func (r crudRepository[T]) queryOne(ctx context.Context, q squirrel.SelectBuilder) (*T, error) {
	sql, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", r.t.name, err)
	}

	item := new(T)
	if err := r.t.scan(r.db.QueryRow(ctx, sql, args...), item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error scanning row")
		return nil, fmt.Errorf("error getting %s row: %w", r.t.name, err)
	}
	return item, nil
}

// List returns every row ordered by id
func (r crudRepository[T]) List(ctx context.Context) ([]*T, error) {
	return r.queryRows(ctx, r.selectBuilder().OrderBy(r.t.orderBy))
}

// GetByID returns ErrNotFound when the row does not exist
func (r crudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return r.queryOne(ctx, r.selectBuilder().Where(squirrel.Eq{r.col("id"): id}))
}

// Create inserts the writable columns and returns the new id
func (r crudRepository[T]) Create(ctx context.Context, item *T) (int64, error) {
	sql, args, err := r.sb.Insert(r.t.name).
		Columns(r.t.columns...).
		Values(r.t.values(item)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error building insert SQL")
		return 0, fmt.Errorf("failed to build create %s query: %w", r.t.name, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if translated := translate(err, r.t.name, opWrite); translated != err {
			return 0, translated
		}
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error executing insert query")
		return 0, fmt.Errorf("error creating %s row: %w", r.t.name, err)
	}

	return id, nil
}

// Update replaces the writable columns of row id
func (r crudRepository[T]) Update(ctx context.Context, id int64, item *T) error {
	values := r.t.values(item)
	set := make(map[string]any, len(r.t.columns)+1)
	for i, c := range r.t.columns {
		set[c] = values[i]
	}
	set["updated_at"] = squirrel.Expr("NOW()")

	return r.exec(ctx, r.sb.Update(r.t.name).SetMap(set).Where(squirrel.Eq{"id": id}), opWrite)
}

// Delete removes row id
func (r crudRepository[T]) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, r.sb.Delete(r.t.name).Where(squirrel.Eq{"id": id}), opDelete)
}

func (r crudRepository[T]) exec(ctx context.Context, q squirrel.Sqlizer, op writeOp) error {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error building write SQL")
		return fmt.Errorf("failed to build %s statement: %w", r.t.name, err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if translated := translate(err, r.t.name, op); translated != err {
			return translated
		}
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error executing write statement")
		return fmt.Errorf("error writing %s: %w", r.t.name, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsWhere reports whether a row matches every column/value pair,
// ignoring row excludeID when it is positive.
func (r crudRepository[T]) ExistsWhere(ctx context.Context, where map[string]any, excludeID int64) (bool, error) {
	q := r.sb.Select("1").From(r.t.name).Where(squirrel.Eq(where))
	if excludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := q.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s exists query: %w", r.t.name, err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("table", r.t.name).Msg("Error executing exists query")
		return false, fmt.Errorf("error checking %s existence: %w", r.t.name, err)
	}
	return exists, nil
}

// Search applies f and returns the matching rows ordered by id
func (r crudRepository[T]) Search(ctx context.Context, f Filter) ([]*T, error) {
	q := r.selectBuilder()

	if len(f.Equals) > 0 {
		eq := squirrel.Eq{}
		for c, v := range f.Equals {
			eq[r.col(c)] = v
		}
		q = q.Where(eq)
	}

	if f.Term != "" && len(f.TermColumns) > 0 {
		cols := make([]string, len(f.TermColumns))
		for i, c := range f.TermColumns {
			cols[i] = r.col(c)
		}
		q = q.Where(termCondition(cols, f.Term))
	}

	if f.DateColumn != "" {
		if f.From != nil {
			q = q.Where(squirrel.GtOrEq{r.col(f.DateColumn): *f.From})
		}
		if f.To != nil {
			q = q.Where(squirrel.LtOrEq{r.col(f.DateColumn): *f.To})
		}
	}

	return r.queryRows(ctx, q.OrderBy(r.t.orderBy))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// termCondition matches term literally inside any of cols. LIKE wildcards in
// the term are escaped so "%" only matches a percent sign.
func termCondition(cols []string, term string) squirrel.Or {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	or := make(squirrel.Or, 0, len(cols))
	for _, c := range cols {
		or = append(or, squirrel.Expr(c+` ILIKE ? ESCAPE '\'`, pattern))
	}
	return or
}

func qualify(table string, columns ...string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}
