// Package app wires the account use case and its collaborators with fx.
package app

import (
	"context"
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/persistence/memory"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/infra/persistence/publishing"
	"accounts/internal/infra/pubsub"
	"accounts/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Module provides usecase.AccountUsecase together with configuration, logging and storage.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	injectInfra(),
	AccountsModule,
)

// AccountsModule provides the account use case for an application that already
// supplies *config.Config, *slog.Logger and context.Context.
//
//nolint:gochecknoglobals
var AccountsModule = fx.Module("accounts",
	injectService(),
	injectRepo(),
	injectUsecase(),
)

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			pubsub.NewEventPublisher,
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newAccountRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
		),
	)
}

type accountRepositoryParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Publisher service.AccountEventPublisher
	Logger    *slog.Logger
}

// newAccountRepository opens the backend named by store.driver and decorates it with event publishing.
// PostgreSQL is only connected when selected.
func newAccountRepository(params accountRepositoryParams) (repository.AccountRepository, error) {
	driver := config.StoreDriverMemory
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	var repo repository.AccountRepository

	switch driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		repo = postgres.NewAccountRepository(db)

	case config.StoreDriverMemory:
		repo = memory.NewAccountRepository()

	default:
		return nil, errors.Errorf("unknown store driver: %s", driver)
	}

	params.Logger.Info("Account repository selected", slog.String("driver", driver))

	return publishing.NewAccountRepository(repo, params.Publisher, params.Logger), nil
}
