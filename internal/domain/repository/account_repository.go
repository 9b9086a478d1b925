// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"accounts/internal/domain/entity"
)

// AccountRepository defines the persistence operations for accounts.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// Add persists a new account and returns it with a repository-assigned ID.
	// Every field of the input is preserved unchanged in the result.
	// Failures are reported as *errors.StoreError from the domain errors package.
	Add(ctx context.Context, account *entity.HashedAccount) (*entity.Account, error)
}
