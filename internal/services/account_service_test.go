package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcana/internal/models/request_models"
	mem "arcana/pkg/memcache"
	"arcana/pkg/utils"
)

func newTestAccountService(accounts *fakeAccountRepo) (AccountServiceInterface, *utils.JWTMaker, *mem.RevokedTokens) {
	maker := utils.NewJWTMaker("test-secret")
	revoked := mem.NewRevokedTokens()
	return NewAccountService(accounts, maker, revoked), maker, revoked
}

func TestRegisterAndLogin(t *testing.T) {
	accounts := &fakeAccountRepo{}
	svc, maker, _ := newTestAccountService(accounts)

	token, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accounts.account.ID.String(), claims.UserID)

	// Stored credential is hashed, never the plain password.
	assert.NotEqual(t, "hunter22", accounts.account.PasswordHash)

	loginToken, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	accounts := &fakeAccountRepo{account: testAccount("0.00")}
	svc, _, _ := newTestAccountService(accounts)

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Dup",
		Email:    "test@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	accounts := &fakeAccountRepo{}
	svc, _, _ := newTestAccountService(accounts)

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	accounts := &fakeAccountRepo{}
	svc, _, revoked := newTestAccountService(accounts)

	token, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(token))
	assert.True(t, revoked.IsRevoked(token))
}
