// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Add inserts one account row and returns it with the generated ID.
func (repo *accountRepository) Add(ctx context.Context, account *entity.HashedAccount) (*entity.Account, error) {
	if account == nil {
		return nil, domainerrors.NewStoreError(nil, "account is nil")
	}

	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewStoreError(err, "context done before insert")
	}

	// Map the pure domain entity to a GORM persistence model.
	accountM := fromHashedAccount(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return nil, translateCreateError(err)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(accountM), nil
}

func fromHashedAccount(account *entity.HashedAccount) *model.AccountModel {
	return &model.AccountModel{
		Name:     account.Name,
		Email:    account.Email,
		Password: account.Password,
	}
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	if accountM == nil {
		return nil
	}

	return &entity.Account{
		ID:       accountM.ID.String(),
		Name:     accountM.Name,
		Email:    accountM.Email,
		Password: accountM.Password,
	}
}
