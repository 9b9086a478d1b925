package impl

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	logs "accounts/internal/infra/log"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	hasher      *mockSvc.MockPasswordHasher
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	hasher := mockSvc.NewMockPasswordHasher(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewAccountService(AccountServiceParams{
		Hasher:      hasher,
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		hasher:      hasher,
		accountRepo: accountRepo,
	}
}

func makeFakeAddAccountInput() *usecase.AddAccountInput {
	return &usecase.AddAccountInput{
		Name:     "valid_name",
		Email:    "valid_mail@mail.com",
		Password: "valid_password",
	}
}

func makeFakeAccount() *entity.Account {
	return &entity.Account{
		ID:       "valid_id",
		Name:     "valid_name",
		Email:    "valid_mail@mail.com",
		Password: "hashed_password",
	}
}

func TestAccountService_Add_HashesPlaintextPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := makeFakeAddAccountInput()

	fx.hasher.EXPECT().Hash("valid_password").Return("hashed_password", nil).Once()
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(makeFakeAccount(), nil).Once()

	_, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	fx.hasher.AssertNumberOfCalls(t, "Hash", 1)
}

func TestAccountService_Add_StoresHashedPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := makeFakeAddAccountInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil).Once()
	fx.accountRepo.EXPECT().
		Add(ctx, &entity.HashedAccount{
			Name:     "valid_name",
			Email:    "valid_mail@mail.com",
			Password: "hashed_password",
		}).
		Return(makeFakeAccount(), nil).
		Once()

	_, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	fx.accountRepo.AssertNumberOfCalls(t, "Add", 1)
	assert.Equal(t, "valid_password", input.Password, "input must not be mutated")
}

func TestAccountService_Add_ReturnsRepositoryAccountVerbatim(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := makeFakeAccount()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil).Once()
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(stored, nil).Once()

	account, err := fx.service.Add(ctx, makeFakeAddAccountInput())

	require.NoError(t, err)
	assert.Same(t, stored, account)
	assert.Equal(t, &entity.Account{
		ID:       "valid_id",
		Name:     "valid_name",
		Email:    "valid_mail@mail.com",
		Password: "hashed_password",
	}, account)
}

func TestAccountService_Add_HashFailureSkipsRepository(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	hashErr := domainerrors.NewHashingError(errors.New("bcrypt failure"), "bcrypt hash failed")

	fx.hasher.EXPECT().Hash("valid_password").Return("", hashErr).Once()

	account, err := fx.service.Add(ctx, makeFakeAddAccountInput())

	assert.Nil(t, account)
	assert.Same(t, hashErr, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAccountService_Add_PropagatesRepositoryError(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	storeErr := domainerrors.NewStoreError(errors.New("connection refused"), "failed to insert account")

	fx.hasher.EXPECT().Hash("valid_password").Return("hashed_password", nil).Once()
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(nil, storeErr).Once()

	account, err := fx.service.Add(ctx, makeFakeAddAccountInput())

	assert.Nil(t, account)
	assert.Same(t, storeErr, err)

	var target *domainerrors.StoreError
	require.True(t, errors.As(err, &target))
	assert.False(t, target.Duplicate())
}

func TestAccountService_Add_PropagatesArbitraryErrorsUnchanged(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	sentinel := errors.New("unexpected")

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil).Once()
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(nil, sentinel).Once()

	_, err := fx.service.Add(ctx, makeFakeAddAccountInput())

	assert.Equal(t, sentinel, err)
}

func TestAccountService_Add_PassesContextThrough(t *testing.T) {
	fx := createTestAccountService(t)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil).Once()
	fx.accountRepo.EXPECT().
		Add(mock.Anything, mock.Anything).
		Run(func(got context.Context, _ *entity.HashedAccount) {
			assert.Equal(t, "marker", got.Value(ctxKey{}))
		}).
		Return(makeFakeAccount(), nil).
		Once()

	_, err := fx.service.Add(ctx, makeFakeAddAccountInput())

	require.NoError(t, err)
}

func TestAccountService_Add_NilInput(t *testing.T) {
	fx := createTestAccountService(t)

	account, err := fx.service.Add(context.Background(), nil)

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAccountService_Add_NeverLogsSecrets(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := NewAccountService(AccountServiceParams{
		Hasher:      hasher,
		AccountRepo: accountRepo,
		Logger:      logger,
	})

	hasher.EXPECT().Hash("valid_password").Return("hashed_password", nil).Twice()
	accountRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(makeFakeAccount(), nil).Once()
	accountRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := srv.Add(context.Background(), makeFakeAddAccountInput())
	require.NoError(t, err)
	_, err = srv.Add(context.Background(), makeFakeAddAccountInput())
	require.Error(t, err)

	output := buf.String()
	assert.NotEmpty(t, output)
	assert.NotContains(t, output, "valid_password")
	assert.NotContains(t, output, "hashed_password")
	assert.Contains(t, output, "valid_id")
}

func TestAccountService_Add_UsesRequestScopedLogger(t *testing.T) {
	fx := createTestAccountService(t)

	var buf bytes.Buffer
	requestLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logs.WithLogger(logs.WithRequestID(context.Background(), "req-123"), requestLogger)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil).Once()
	fx.accountRepo.EXPECT().Add(ctx, mock.Anything).Return(makeFakeAccount(), nil).Once()

	_, err := fx.service.Add(ctx, makeFakeAddAccountInput())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "req-123")
}

func TestAccountService_Add_ConcurrentCalls(t *testing.T) {
	fx := createTestAccountService(t)

	const workers = 16

	fx.hasher.EXPECT().Hash("valid_password").Return("hashed_password", nil).Times(workers)
	fx.accountRepo.EXPECT().
		Add(mock.Anything, mock.AnythingOfType("*entity.HashedAccount")).
		Return(makeFakeAccount(), nil).
		Times(workers)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.Add(context.Background(), makeFakeAddAccountInput())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
