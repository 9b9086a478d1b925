// Package publishing decorates an account repository with account-created events.
package publishing

import (
	"context"
	"log/slog"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	logs "accounts/internal/infra/log"
)

// accountRepository publishes an AccountCreatedEvent after each successful Add.
type accountRepository struct {
	next      repository.AccountRepository
	publisher service.AccountEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewAccountRepository wraps next so that stored accounts are announced through publisher.
func NewAccountRepository(next repository.AccountRepository, publisher service.AccountEventPublisher, logger *slog.Logger) repository.AccountRepository {
	return &accountRepository{
		next:      next,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Add stores the account, then publishes the event.
// A publish failure is logged and does not fail the call, the row is already written.
func (repo *accountRepository) Add(ctx context.Context, account *entity.HashedAccount) (*entity.Account, error) {
	stored, err := repo.next.Add(ctx, account)
	if err != nil || stored == nil {
		return stored, err
	}

	event := &service.AccountCreatedEvent{
		RequestID: logs.RequestIDFromContext(ctx),
		AccountID: stored.ID,
		Name:      stored.Name,
		Email:     stored.Email,
		CreatedAt: repo.now().UTC(),
	}

	if err := repo.publisher.PublishAccountCreated(ctx, event); err != nil {
		logs.FromContextOrDefault(ctx, repo.logger).Warn("Failed to publish account created event",
			slog.String("accountID", stored.ID),
			slog.Any("error", err),
		)
	}

	return stored, nil
}
