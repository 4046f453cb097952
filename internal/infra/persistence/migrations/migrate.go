package migrations

import (
	"context"
	"database/sql"

	"qkart/internal/errors"

	"github.com/pressly/goose/v3"
)

// upContext is swapped in tests so Up can run without a database.
var upContext = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Up applies every pending embedded migration.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := upContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
