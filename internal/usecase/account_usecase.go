// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// AddAccountInput defines the data required to create a new account.
// Password is the plaintext supplied by the caller; it is hashed before it reaches persistence.
type AddAccountInput struct {
	Name     string
	Email    string
	Password string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that a hosting application will depend on.
type AccountUsecase interface {
	// Add hashes the input password, persists the account and returns the stored record.
	Add(ctx context.Context, input *AddAccountInput) (*entity.Account, error)
}
