// Package sqlite opens an embedded SQLite database for local runs and tests.
package sqlite

import (
	"context"
	"log/slog"

	"notekeeper/config"
	"notekeeper/internal/errors"
	"notekeeper/internal/infra/persistence/gormlog"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultPath is used when storage.sqlite.path is empty.
const DefaultPath = "notekeeper.db"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured SQLite file and closes it on shutdown.
func New(params Params) (*gorm.DB, error) {
	path := DefaultPath
	if params.Config.Storage != nil && params.Config.Storage.SQLite != nil && params.Config.Storage.SQLite.Path != "" {
		path = params.Config.Storage.SQLite.Path
	}

	db, err := Open(path, params.Logger, params.Config)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return errors.WithStack(err)
			}

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to dsn with foreign keys enforced and a single connection,
// since SQLite serializes writers anyway.
func Open(dsn string, logger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlog.New(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.Wrap(err, "failed to enable SQLite foreign keys")
	}

	return db, nil
}
