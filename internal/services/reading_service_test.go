package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"arcana/internal/models/db_models"
	"arcana/internal/models/request_models"
	"arcana/pkg/utils"
)

type fakeTxRunner struct {
	began      bool
	rolledBack bool
}

func (f *fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	f.began = true
	if err := fc(nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fakeAccountRepo struct {
	account        *db_models.Account
	balanceUpdates []decimal.Decimal
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.account = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return f.account, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.account != nil && f.account.Email == email {
		return f.account, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByIdTx(tx *gorm.DB, id uuid.UUID) (*db_models.Account, error) {
	return f.account, nil
}

func (f *fakeAccountRepo) UpdateBalanceTx(tx *gorm.DB, id uuid.UUID, balance decimal.Decimal) error {
	f.balanceUpdates = append(f.balanceUpdates, balance)
	f.account.Balance = balance
	return nil
}

type fakeReadingRepo struct {
	inserted  []*db_models.Reading
	completed []*db_models.Reading
	history   []db_models.Reading
}

func (f *fakeReadingRepo) InsertTx(tx *gorm.DB, reading *db_models.Reading) error {
	f.inserted = append(f.inserted, reading)
	return nil
}

func (f *fakeReadingRepo) CompleteTx(tx *gorm.DB, reading *db_models.Reading, result string) error {
	reading.Result = &result
	reading.Status = db_models.ReadingStatusCompleted
	f.completed = append(f.completed, reading)
	return nil
}

func (f *fakeReadingRepo) ListCompletedByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Reading, error) {
	return f.history, nil
}

type fakeGenerator struct {
	result  string
	err     error
	prompts []string
	images  [][]string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string, imagePaths []string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.images = append(f.images, imagePaths)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func testAccount(balance string) *db_models.Account {
	dob := "1990-01-01"
	birthTime := "12:00"
	location := "Test City"
	acc := &db_models.Account{
		Name:          "Test",
		Email:         "test@example.com",
		Balance:       decimal.RequireFromString(balance),
		BirthDate:     &dob,
		BirthTime:     &birthTime,
		BirthLocation: &location,
	}
	acc.ID = uuid.New()
	return acc
}

func newTestReadingService(account *db_models.Account, gen *fakeGenerator) (*ReadingService, *fakeTxRunner, *fakeAccountRepo, *fakeReadingRepo) {
	runner := &fakeTxRunner{}
	accounts := &fakeAccountRepo{account: account}
	readings := &fakeReadingRepo{}
	svc := NewReadingService(runner, accounts, readings, gen, decimal.RequireFromString("5.00")).(*ReadingService)
	return svc, runner, accounts, readings
}

func TestHoroscopeDebitsAndRecords(t *testing.T) {
	account := testAccount("10.00")
	gen := &fakeGenerator{result: "Your future is bright."}
	svc, _, accounts, readings := newTestReadingService(account, gen)

	resp, err := svc.Horoscope(context.Background(), account.ID, request_models.HoroscopeRequest{Period: "weekly"})
	require.NoError(t, err)

	assert.Equal(t, "5.00", resp.RemainingBalance.StringFixed(2))
	require.Len(t, accounts.balanceUpdates, 1)
	assert.Equal(t, "5.00", accounts.balanceUpdates[0].StringFixed(2))

	require.Len(t, readings.inserted, 1)
	reading := readings.inserted[0]
	assert.Equal(t, db_models.ReadingTypeHoroscope, reading.Type)
	assert.Equal(t, db_models.ReadingStatusCompleted, reading.Status)
	require.NotNil(t, reading.Result)
	assert.Equal(t, "Your future is bright.", *reading.Result)

	// Prompt resolved from the profile fallback.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "born on 1990-01-01 at 12:00 in Test City")
}

func TestHoroscopeInsufficientFundsIsSideEffectFree(t *testing.T) {
	account := testAccount("4.99")
	svc, runner, accounts, readings := newTestReadingService(account, &fakeGenerator{result: "x"})

	_, err := svc.Horoscope(context.Background(), account.ID, request_models.HoroscopeRequest{})

	assert.ErrorIs(t, err, utils.ErrInsufficientFunds)
	assert.False(t, runner.began)
	assert.Empty(t, accounts.balanceUpdates)
	assert.Empty(t, readings.inserted)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("4.99")))
}

func TestHoroscopeRequiresDateOfBirth(t *testing.T) {
	account := testAccount("10.00")
	account.BirthDate = nil
	svc, runner, _, _ := newTestReadingService(account, &fakeGenerator{result: "x"})

	_, err := svc.Horoscope(context.Background(), account.ID, request_models.HoroscopeRequest{})

	assert.ErrorIs(t, err, utils.ErrMissingBirthDate)
	assert.False(t, runner.began)
}

func TestPalmInsufficientFundsRollsBackInTx(t *testing.T) {
	account := testAccount("0.00")
	svc, runner, accounts, readings := newTestReadingService(account, &fakeGenerator{result: "x"})

	_, err := svc.Palm(context.Background(), account.ID, "palm_images/a.jpg", "/tmp/a.jpg")

	assert.ErrorIs(t, err, utils.ErrInsufficientFunds)
	assert.True(t, runner.rolledBack)
	assert.Empty(t, accounts.balanceUpdates)
	assert.Empty(t, readings.inserted)
}

func TestCoffeeStoresAllImagePaths(t *testing.T) {
	account := testAccount("5.00")
	gen := &fakeGenerator{result: "Symbols everywhere."}
	svc, _, _, readings := newTestReadingService(account, gen)

	paths := []string{"coffee_images/a.jpg", "coffee_images/b.jpg"}
	resp, err := svc.Coffee(context.Background(), account.ID, paths, []string{"/tmp/a.jpg", "/tmp/b.jpg"})
	require.NoError(t, err)

	assert.True(t, resp.RemainingBalance.IsZero())

	require.Len(t, readings.inserted, 1)
	var input db_models.CoffeeInput
	require.NoError(t, json.Unmarshal(readings.inserted[0].InputData, &input))
	assert.Equal(t, paths, input.ImagePaths)

	// Both stored files were handed to the generator.
	require.Len(t, gen.images, 1)
	assert.Len(t, gen.images[0], 2)
}

func TestGeneratorFailureStringStillCompletes(t *testing.T) {
	account := testAccount("10.00")
	gen := &fakeGenerator{result: utils.GenerationFailedResponse}
	svc, runner, _, readings := newTestReadingService(account, gen)

	_, err := svc.Horoscope(context.Background(), account.ID, request_models.HoroscopeRequest{})
	require.NoError(t, err)

	assert.False(t, runner.rolledBack)
	require.Len(t, readings.completed, 1)
	assert.Equal(t, utils.GenerationFailedResponse, *readings.completed[0].Result)
	assert.Equal(t, db_models.ReadingStatusCompleted, readings.completed[0].Status)
}

func TestGeneratorErrorRollsBackEverything(t *testing.T) {
	account := testAccount("10.00")
	gen := &fakeGenerator{err: errors.New("image unreadable")}
	svc, runner, _, readings := newTestReadingService(account, gen)

	_, err := svc.Palm(context.Background(), account.ID, "palm_images/a.jpg", "/tmp/a.jpg")

	require.Error(t, err)
	assert.True(t, runner.rolledBack)
	assert.Empty(t, readings.completed)
}

func TestEnsureFunds(t *testing.T) {
	account := testAccount("5.00")
	svc, _, _, _ := newTestReadingService(account, &fakeGenerator{})

	assert.NoError(t, svc.EnsureFunds(context.Background(), account.ID))

	account.Balance = decimal.RequireFromString("4.99")
	assert.ErrorIs(t, svc.EnsureFunds(context.Background(), account.ID), utils.ErrInsufficientFunds)
}
