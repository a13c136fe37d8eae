package services

import (
	"context"
	"time"

	"arcana/internal/models/db_models"
	"arcana/internal/models/request_models"
	"arcana/internal/models/response_models"
	"arcana/internal/repositories"
	mem "arcana/pkg/memcache"
	"arcana/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	Logout(token string) error
	GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwtMaker    *utils.JWTMaker
	revoked     mem.RevokedTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	jwtMaker *utils.JWTMaker,
	revoked mem.RevokedTokenStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwtMaker:    jwtMaker,
		revoked:     revoked,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (string, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return "", utils.ErrDatabaseError
	}

	token, err := a.jwtMaker.CreateToken(newAccount.ID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	return token, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.jwtMaker.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

// Logout denylists the presented token until its own expiry.
func (a *AccountService) Logout(token string) error {
	claims, err := a.jwtMaker.ValidateToken(token)
	if err != nil {
		return utils.ErrInvalidCredentials
	}

	until := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	a.revoked.Revoke(token, until)
	return nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:            account.ID.String(),
		Name:          account.Name,
		Email:         account.Email,
		Balance:       account.Balance,
		BirthDate:     account.BirthDate,
		BirthTime:     account.BirthTime,
		BirthLocation: account.BirthLocation,
		Gender:        account.Gender,
	}, nil
}
