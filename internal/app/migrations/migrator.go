package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/yigit/registro-academico/internal/pkg/logger"
)

//go:embed sql/*.sql
var migrationFS embed.FS

const migrationTableName = "schema_migrations"

// Migrator applies the embedded goose migrations
type Migrator struct {
	db *sql.DB
}

// NewMigrator wraps the pool in a database/sql handle for goose
func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{db: stdlib.OpenDBFromPool(pool)}
}

// NewMigratorFromDB uses an existing database/sql handle
func NewMigratorFromDB(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

func (m *Migrator) configure() error {
	goose.SetBaseFS(migrationFS)
	goose.SetTableName(migrationTableName)
	goose.SetLogger(&gooseLogger{log: logger.WithComponent("migrations")})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// MigrateUp applies every pending migration
func (m *Migrator) MigrateUp(ctx context.Context) error {
	if err := m.configure(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, "sql"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info().Int64("version", version).Msg("Database schema is up to date")
	return nil
}

// MigrateDown rolls back the latest migration
func (m *Migrator) MigrateDown(ctx context.Context) error {
	if err := m.configure(); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, m.db, "sql"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Close releases the database/sql handle; the pool stays open
func (m *Migrator) Close() error {
	return m.db.Close()
}

type gooseLogger struct {
	log zerolog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatal().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
