package postgres

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"taskmanager/internal/errors"
	"taskmanager/internal/infra/persistence/postgres/migrations"
)

const (
	// DialectPostgres is the goose dialect of the production store.
	DialectPostgres = "postgres"
	// DialectSQLite is the goose dialect used by in-memory stores.
	DialectSQLite = "sqlite3"
)

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrapf(err, "set goose dialect %s", dialect)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}
