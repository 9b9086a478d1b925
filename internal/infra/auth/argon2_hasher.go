package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
)

const (
	argon2AlgorithmID = "argon2id"

	minArgon2MemoryKB    uint32 = 8 * 1024
	minArgon2Time        uint32 = 1
	minArgon2Parallelism uint8  = 1
	minArgon2SaltLength  uint32 = 16
	minArgon2KeyLength   uint32 = 16
)

// Argon2Hasher hashes passwords with argon2id and encodes them as PHC strings:
// $argon2id$v=19$m=<memory>,t=<time>,p=<parallelism>$<salt>$<hash>
type Argon2Hasher struct {
	memory      uint32
	time        uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
	random      io.Reader
}

type argon2Params struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	hash        []byte
}

// NewArgon2Hasher validates the parameters and creates an argon2id hasher.
func NewArgon2Hasher(cfg *config.Argon2Config) (*Argon2Hasher, error) {
	if cfg == nil {
		return nil, domainerrors.ErrInvalidConfiguration.WithDetails("argon2 configuration is missing")
	}

	if err := validateArgon2Config(cfg); err != nil {
		return nil, err
	}

	return &Argon2Hasher{
		memory:      cfg.Memory,
		time:        cfg.Time,
		parallelism: cfg.Parallelism,
		saltLength:  cfg.SaltLength,
		keyLength:   cfg.KeyLength,
		random:      rand.Reader,
	}, nil
}

var _ service.PasswordHasher = (*Argon2Hasher)(nil)

// Hash derives an argon2id key from the password and a fresh random salt.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domainerrors.NewHashingError(nil, "password cannot be empty")
	}

	salt := make([]byte, h.saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", domainerrors.NewHashingError(errors.Wrap(err, "read salt"), "argon2 salt generation failed")
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.parallelism, h.keyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2AlgorithmID,
		argon2.Version,
		h.memory,
		h.time,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether the password matches the encoded hash.
// The parameters stored in the hash are used, not the hasher's own.
func (h *Argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	params, err := parseArgon2Hash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password),
		params.salt,
		params.time,
		params.memory,
		params.parallelism,
		uint32(len(params.hash)),
	)

	return subtle.ConstantTimeCompare(computed, params.hash) == 1, nil
}

func parseArgon2Hash(encodedHash string) (*argon2Params, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, errors.New("invalid argon2 hash format")
	}

	if parts[1] != argon2AlgorithmID {
		return nil, errors.Errorf("unsupported algorithm: %s", parts[1])
	}

	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || !strings.HasPrefix(parts[2], "v=") {
		return nil, errors.New("invalid argon2 version")
	}
	if version != argon2.Version {
		return nil, errors.Errorf("unsupported argon2 version: %d", version)
	}

	params := &argon2Params{}
	if err := parseArgon2Params(parts[3], params); err != nil {
		return nil, err
	}

	params.salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(params.salt) < int(minArgon2SaltLength) {
		return nil, errors.New("invalid argon2 salt")
	}

	params.hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(params.hash) == 0 {
		return nil, errors.New("invalid argon2 key")
	}

	return params, nil
}

func parseArgon2Params(part string, params *argon2Params) error {
	pairs := strings.Split(part, ",")
	if len(pairs) != 3 {
		return errors.New("invalid argon2 parameter format")
	}

	var memorySet, timeSet, parallelismSet bool
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return errors.Errorf("invalid argon2 parameter: %s", pair)
		}

		switch key {
		case "m":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || v < uint64(minArgon2MemoryKB) {
				return errors.New("invalid argon2 memory parameter")
			}
			params.memory = uint32(v)
			memorySet = true
		case "t":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || v < uint64(minArgon2Time) {
				return errors.New("invalid argon2 time parameter")
			}
			params.time = uint32(v)
			timeSet = true
		case "p":
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil || v < uint64(minArgon2Parallelism) {
				return errors.New("invalid argon2 parallelism parameter")
			}
			params.parallelism = uint8(v)
			parallelismSet = true
		default:
			return errors.Errorf("unsupported argon2 parameter: %s", key)
		}
	}

	if !memorySet || !timeSet || !parallelismSet {
		return errors.New("missing argon2 parameters")
	}

	return nil
}

func validateArgon2Config(cfg *config.Argon2Config) error {
	switch {
	case cfg.Memory < minArgon2MemoryKB:
		return domainerrors.ErrInvalidConfiguration.WithDetails("argon2 memory must be >= 8192 KiB")
	case cfg.Time < minArgon2Time:
		return domainerrors.ErrInvalidConfiguration.WithDetails("argon2 time must be >= 1")
	case cfg.Parallelism < minArgon2Parallelism:
		return domainerrors.ErrInvalidConfiguration.WithDetails("argon2 parallelism must be >= 1")
	case cfg.SaltLength < minArgon2SaltLength:
		return domainerrors.ErrInvalidConfiguration.WithDetails("argon2 salt length must be >= 16")
	case cfg.KeyLength < minArgon2KeyLength:
		return domainerrors.ErrInvalidConfiguration.WithDetails("argon2 key length must be >= 16")
	}

	return nil
}
