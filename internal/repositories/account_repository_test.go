package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestFindByEmailReturnsAccount(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAccountRepository(gdb)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "balance"}).
		AddRow(id.String(), "Test", "test@example.com", "10.00")

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE email = \$1`).
		WithArgs("test@example.com", 1).
		WillReturnRows(rows)

	account, err := repo.FindByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.Equal(t, id, account.ID)
	assert.Equal(t, "test@example.com", account.Email)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("10.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailMissingIsNilNotError(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAccountRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	account, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestUpdateBalanceTx(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAccountRepository(gdb)

	id := uuid.New()
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateBalanceTx(gdb, id, decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
