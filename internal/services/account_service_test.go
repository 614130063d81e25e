package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibego/internal/models/db_models"
	"vibego/internal/models/request_models"
	"vibego/pkg/utils"
)

type fakeAccountRepository struct {
	accounts map[string]*db_models.Account
	findErr  error
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.accounts[email], nil
}

func (f *fakeAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.Email] = account
	return nil
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "correct horse battery",
	})
	require.NoError(t, err)

	stored := repo.accounts["ana@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "user", stored.Role)
	// Never the plaintext.
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := NewAccountService(repo)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "pw-one",
	}))

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Other Ana",
		Email:       "ana@example.com",
		Password:    "pw-two",
	})
	assert.True(t, errors.Is(err, utils.ErrEmailAlreadyExists))
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := NewAccountService(repo)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "right",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, utils.ErrInvalidCredentials))
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepository())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})
	assert.True(t, errors.Is(err, utils.ErrAccountNotFound))
}

func TestLogin_RepositoryFailure(t *testing.T) {
	repo := newFakeAccountRepository()
	repo.findErr = errors.New("connection refused")
	svc := NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "pw",
	})
	assert.True(t, errors.Is(err, utils.ErrDatabaseError))
}
