package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPath        = "."
	defaultServiceName = "accounts"
	defaultLogLevel    = "info"

	defaultArgon2Memory      = 64 * 1024
	defaultArgon2Time        = 3
	defaultArgon2Parallelism = 2
	defaultArgon2SaltLength  = 16
	defaultArgon2KeyLength   = 32
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Hashing algorithms
const (
	HashingAlgorithmBcrypt   = "bcrypt"
	HashingAlgorithmArgon2id = "argon2id"
)

// Pub/Sub providers. An empty provider disables event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Store selects the account repository backend
	Store *StoreConfig `json:"store" yaml:"store" validate:"required"`

	// Hashing configures the password hasher
	Hashing *HashingConfig `json:"hashing" yaml:"hashing" validate:"required"`

	// PubSub configuration for account event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub" validate:"required"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// StoreConfig defines which repository backs account persistence
type StoreConfig struct {
	Driver string `json:"driver" yaml:"driver" validate:"oneof=postgres memory"`
}

// HashingConfig defines password hashing configuration
type HashingConfig struct {
	// Algorithm: "bcrypt" or "argon2id"
	Algorithm string `json:"algorithm" yaml:"algorithm" validate:"oneof=bcrypt argon2id"`

	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost" validate:"min=4,max=31"`

	Argon2 *Argon2Config `json:"argon2" yaml:"argon2" validate:"required"`
}

// Argon2Config defines argon2id parameters
type Argon2Config struct {
	// Memory in KiB
	Memory      uint32 `json:"memory" yaml:"memory" validate:"min=8192"`
	Time        uint32 `json:"time" yaml:"time" validate:"min=1"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism" validate:"min=1"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength" validate:"min=16"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength" validate:"min=16"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId" validate:"required_if=Provider google"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills the sections left out of the YAML file.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Env.ServiceName) == "" {
		cfg.Env.ServiceName = defaultServiceName
	}

	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = defaultLogLevel
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if strings.TrimSpace(cfg.Store.Driver) == "" {
		cfg.Store.Driver = StoreDriverMemory
	}

	if cfg.Hashing == nil {
		cfg.Hashing = &HashingConfig{}
	}
	if strings.TrimSpace(cfg.Hashing.Algorithm) == "" {
		cfg.Hashing.Algorithm = HashingAlgorithmBcrypt
	}
	if cfg.Hashing.BcryptCost == 0 {
		cfg.Hashing.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Hashing.Argon2 == nil {
		cfg.Hashing.Argon2 = &Argon2Config{}
	}
	applyArgon2Defaults(cfg.Hashing.Argon2)

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

func applyArgon2Defaults(cfg *Argon2Config) {
	if cfg.Memory == 0 {
		cfg.Memory = defaultArgon2Memory
	}
	if cfg.Time == 0 {
		cfg.Time = defaultArgon2Time
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = defaultArgon2Parallelism
	}
	if cfg.SaltLength == 0 {
		cfg.SaltLength = defaultArgon2SaltLength
	}
	if cfg.KeyLength == 0 {
		cfg.KeyLength = defaultArgon2KeyLength
	}
}

// Validate checks the struct tags of the loaded configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if cfg.Store.Driver == StoreDriverPostgres && cfg.Postgres == nil {
		return errors.New("invalid configuration: postgres section is required for the postgres store driver")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
