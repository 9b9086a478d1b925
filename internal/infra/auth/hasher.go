package auth

import (
	"strings"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
)

// NewPasswordHasher selects the hasher named by hashing.algorithm.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg == nil || cfg.Hashing == nil {
		return nil, domainerrors.ErrInvalidConfiguration.WithDetails("hashing configuration is missing")
	}

	switch strings.ToLower(cfg.Hashing.Algorithm) {
	case config.HashingAlgorithmBcrypt:
		return NewBcryptHasher(cfg.Hashing.BcryptCost), nil
	case config.HashingAlgorithmArgon2id:
		hasher, err := NewArgon2Hasher(cfg.Hashing.Argon2)
		if err != nil {
			return nil, err
		}

		return hasher, nil
	default:
		return nil, domainerrors.ErrInvalidConfiguration.WithDetails("unknown hashing algorithm: " + cfg.Hashing.Algorithm)
	}
}
