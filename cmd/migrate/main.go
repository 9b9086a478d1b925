package main

import (
	"context"
	"log/slog"

	"accounts/config"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB         *gorm.DB
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(runMigration),
	).Run()
}

// runMigration migrates the schema once the database is reachable, then stops the app.
func runMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}

			params.Logger.Info("Accounts schema migrated")

			return params.Shutdowner.Shutdown()
		},
	})
}
