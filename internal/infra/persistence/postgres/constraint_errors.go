package postgres

import (
	"strings"

	domainerrors "accounts/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fallback for connections opened without TranslateError
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "violates foreign key") ||
		strings.Contains(errMsg, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null constraint") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "violates check constraint") ||
		strings.Contains(errMsg, pgCheckViolation)
}

// translateCreateError maps an insert failure onto the account store error kinds.
func translateCreateError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.NewDuplicateAccountError(err, "account with this email already exists")
	case isNotNullConstraintViolation(err):
		return domainerrors.NewStoreError(err, "account is missing a required field")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewStoreError(err, "account references a missing record")
	case isCheckConstraintViolation(err):
		return domainerrors.NewStoreError(err, "account violates a check constraint")
	default:
		return domainerrors.NewStoreError(errors.WithStack(err), "failed to insert account")
	}
}
