package sqlite

import (
	"context"

	"github.com/pkg/errors"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type txContextKey string

const txKey txContextKey = "trx"

// DB is the single store handle. sqlite serialises writers, so reads and
// writes share one connection and a transaction travels in the context.
type DB struct {
	conn *gorm.DB
}

func Create(config Config, withDebug bool) (*DB, error) {
	if config.Path == "" {
		return nil, errors.New("sqlite: database path is empty")
	}
	if err := config.ensureDir(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlitedriver.Open(config.dsn()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", config.Path)
	}

	if withDebug {
		db = db.Debug()
	}
	return &DB{conn: db}, nil
}

// Open creates the handle, brings the schema up to date and pins the pool
// to a single connection. Any error here is fatal for the caller.
func Open(ctx context.Context, config Config, withDebug bool) (*DB, error) {
	db, err := Create(config, withDebug)
	if err != nil {
		return nil, err
	}
	if err = Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	sqlDB, err := db.conn.DB()
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "sqlite: access pool")
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func (r *DB) Close() error {
	sqlDB, err := r.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithinTransaction runs fn in a transaction. When ctx already carries one
// the call nests through a savepoint instead of opening a second connection.
func (r *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.Transaction(func(inner *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey, inner))
		})
	}
	return r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	})
}

func (r *DB) Write(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.conn.WithContext(ctx)
}

func (r *DB) Read(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.conn.WithContext(ctx)
}
