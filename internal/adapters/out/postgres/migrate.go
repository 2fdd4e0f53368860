package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dealership/internal/adapters/out/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate runs a goose command ("up", "down", "status", ...) with the embedded
// migrations against a postgres database.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MigrateUp applies every pending migration through a gorm connection.
func MigrateUp(ctx context.Context, db interface{ DB() (*sql.DB, error) }) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}
	return Migrate(ctx, sqlDB, "up")
}
