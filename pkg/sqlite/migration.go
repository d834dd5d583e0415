package sqlite

import (
	"context"
	"embed"

	"github.com/nimasrn/clubhouse/pkg/logger"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema. The baseline only uses
// "IF NOT EXISTS" statements, so it is safe on every startup and on files
// created before version tracking existed.
func Migrate(ctx context.Context, db *DB) error {
	sqlDB, err := db.conn.DB()
	if err != nil {
		return errors.Wrap(err, "migrate: access pool")
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(logger.GetLogger())
	if err = goose.SetDialect("sqlite3"); err != nil {
		return errors.Wrap(err, "migrate: set dialect")
	}
	if err = goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return errors.Wrap(err, "migrate: apply schema")
	}
	return nil
}
