// Package persistence selects the storage backend and bootstraps its schema.
package persistence

import (
	"context"
	"log/slog"

	"notekeeper/config"
	"notekeeper/internal/domain/lifecycle"
	"notekeeper/internal/errors"
	"notekeeper/internal/infra/persistence/model"
	"notekeeper/internal/infra/persistence/postgres"
	"notekeeper/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewDatabase opens the backend named by storage.driver. When storage.autoMigrate
// is set, the schema is created on start after the connection check.
func NewDatabase(params Params) (*gorm.DB, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil {
		driver = params.Config.Storage.Driver
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case config.StorageDriverPostgres:
		db, err = postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	case config.StorageDriverSQLite:
		db, err = sqlite.New(sqlite.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	default:
		return nil, errors.Errorf("unsupported storage driver: %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if params.Config.Storage != nil && params.Config.Storage.AutoMigrate {
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				params.Logger.Info("Bootstrapping database schema", slog.String("driver", driver))

				return Migrate(ctx, db)
			},
		})
	}

	return db, nil
}

// Migrate creates the users and users_notes tables if they are missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
