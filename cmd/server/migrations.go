package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/inkwell/inkwell-api/internal/platform/postgres"
)

// runMigrations applies pending goose migrations. An unreachable
// database is downgraded to a warning: the server still boots, and the
// connection gate dials lazily on the first request that needs the
// database.
func (app *application) runMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := app.dbManager.Ensure(ctx)
	if err != nil {
		app.logger.Warn("Skipping migrations, database unreachable", "error", err)
		return nil
	}

	goose.SetBaseFS(postgres.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app.logger.Info("Migrations applied")
	return nil
}
