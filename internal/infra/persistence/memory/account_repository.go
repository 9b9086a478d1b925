// Package memory contains an in-process account repository for local runs and tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AccountRepository keeps accounts in a map keyed by ID.
// Emails are unique, compared case-insensitively.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]entity.Account
	emails   map[string]string
	newID    func() (uuid.UUID, error)
}

// NewAccountRepository creates an empty in-memory repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]entity.Account),
		emails:   make(map[string]string),
		newID:    uuid.NewV7,
	}
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// Add stores a copy of the account under a new UUIDv7.
func (repo *AccountRepository) Add(ctx context.Context, account *entity.HashedAccount) (*entity.Account, error) {
	if account == nil {
		return nil, domainerrors.NewStoreError(nil, "account is nil")
	}

	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewStoreError(err, "context done before insert")
	}

	id, err := repo.newID()
	if err != nil {
		return nil, domainerrors.NewStoreError(errors.Wrap(err, "generate account id"), "failed to insert account")
	}

	emailKey := strings.ToLower(account.Email)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.emails[emailKey]; exists {
		return nil, domainerrors.NewDuplicateAccountError(nil, "account with this email already exists")
	}

	stored := entity.Account{
		ID:       id.String(),
		Name:     account.Name,
		Email:    account.Email,
		Password: account.Password,
	}
	repo.accounts[stored.ID] = stored
	repo.emails[emailKey] = stored.ID

	return &stored, nil
}

// FindByEmail returns a copy of the stored account, or nil if none matches.
func (repo *AccountRepository) FindByEmail(_ context.Context, email string) *entity.Account {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.emails[strings.ToLower(email)]
	if !ok {
		return nil
	}

	account := repo.accounts[id]

	return &account
}

// Len returns the number of stored accounts.
func (repo *AccountRepository) Len() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.accounts)
}
