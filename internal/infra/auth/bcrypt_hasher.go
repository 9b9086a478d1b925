// Package auth provides concrete implementations of the password hashing domain service.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
)

// BcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for BcryptHasher.
// Costs outside the bcrypt range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

var _ service.PasswordHasher = (*BcryptHasher)(nil)

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domainerrors.NewHashingError(nil, "password cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.NewHashingError(err, "bcrypt hash failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *BcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
