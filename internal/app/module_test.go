package app

import (
	"context"
	"log/slog"
	"testing"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(algorithm string) *config.Config {
	cfg := &config.Config{
		Store: &config.StoreConfig{Driver: config.StoreDriverMemory},
		Hashing: &config.HashingConfig{
			Algorithm:  algorithm,
			BcryptCost: bcrypt.MinCost,
			Argon2: &config.Argon2Config{
				Memory:      8 * 1024,
				Time:        1,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
		},
		PubSub: &config.PubSubConfig{},
	}
	cfg.Env.ServiceName = "accounts-test"

	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config, targets ...any) *fxtest.App {
	return fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg, slog.New(slog.DiscardHandler)),
		fx.Provide(context.Background),
		AccountsModule,
		fx.Populate(targets...),
	)
}

func TestModule_ValidateApp(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Module))
}

func TestAccountsModule_CreatesAccountWithBcrypt(t *testing.T) {
	var accounts usecase.AccountUsecase

	app := newTestApp(t, newTestConfig(config.HashingAlgorithmBcrypt), &accounts)
	app.RequireStart()
	defer app.RequireStop()

	account, err := accounts.Add(context.Background(), &usecase.AddAccountInput{
		Name:     "valid_name",
		Email:    "valid_mail@mail.com",
		Password: "valid_password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "valid_name", account.Name)
	assert.Equal(t, "valid_mail@mail.com", account.Email)
	assert.NotEqual(t, "valid_password", account.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("valid_password")))

	_, err = accounts.Add(context.Background(), &usecase.AddAccountInput{
		Name:     "other_name",
		Email:    "valid_mail@mail.com",
		Password: "other_password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAccountsModule_CreatesAccountWithArgon2id(t *testing.T) {
	var accounts usecase.AccountUsecase

	app := newTestApp(t, newTestConfig(config.HashingAlgorithmArgon2id), &accounts)
	app.RequireStart()
	defer app.RequireStop()

	account, err := accounts.Add(context.Background(), &usecase.AddAccountInput{
		Name:     "valid_name",
		Email:    "valid_mail@mail.com",
		Password: "valid_password",
	})
	require.NoError(t, err)
	assert.Contains(t, account.Password, "$argon2id$")
}

func TestAccountsModule_HashingFailureIsReturned(t *testing.T) {
	var accounts usecase.AccountUsecase

	app := newTestApp(t, newTestConfig(config.HashingAlgorithmBcrypt), &accounts)
	app.RequireStart()
	defer app.RequireStop()

	account, err := accounts.Add(context.Background(), &usecase.AddAccountInput{
		Name:  "valid_name",
		Email: "valid_mail@mail.com",
	})
	assert.Nil(t, account)

	var hashErr *domainerrors.HashingError
	assert.True(t, errors.As(err, &hashErr))
}

func TestAccountsModule_UnknownStoreDriver(t *testing.T) {
	cfg := newTestConfig(config.HashingAlgorithmBcrypt)
	cfg.Store.Driver = "mysql"

	var accounts usecase.AccountUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, slog.New(slog.DiscardHandler)),
		fx.Provide(context.Background),
		AccountsModule,
		fx.Populate(&accounts),
	)

	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "unknown store driver")
}
