// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	logs "accounts/internal/infra/log"
	"accounts/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	hasher      service.PasswordHasher
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Hasher      service.PasswordHasher
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		hasher:      params.Hasher,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// log returns the request-scoped logger from context, or falls back to the service logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return logs.FromContextOrDefault(ctx, srv.logger)
}

// Add hashes the plaintext password and hands the hashed record to the repository.
// Collaborator errors are returned as they were received.
func (srv *accountService) Add(ctx context.Context, input *usecase.AddAccountInput) (*entity.Account, error) {
	if input == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("account input is nil")
	}

	srv.log(ctx).Debug("Creating account", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	account, err := srv.accountRepo.Add(ctx, &entity.HashedAccount{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to store account",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	if account != nil {
		srv.log(ctx).Info("Account created", slog.String("accountID", account.ID))
	}

	return account, nil
}
