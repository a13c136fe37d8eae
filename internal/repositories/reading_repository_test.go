package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcana/internal/models/db_models"
)

func TestListCompletedByAccountFiltersAndOrders(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReadingRepository(gdb)

	accountID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "account_id", "type", "status", "result", "created_at"}).
		AddRow(uuid.NewString(), accountID.String(), "palm", "completed", "newer", int64(200)).
		AddRow(uuid.NewString(), accountID.String(), "horoscope", "completed", "older", int64(100))

	mock.ExpectQuery(`SELECT \* FROM "readings" WHERE .*account_id = \$1 AND status = \$2`).
		WithArgs(accountID, "completed").
		WillReturnRows(rows)

	readings, err := repo.ListCompletedByAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, readings, 2)

	assert.Equal(t, db_models.ReadingTypePalm, readings[0].Type)
	assert.Equal(t, db_models.ReadingStatusCompleted, readings[0].Status)
	assert.Equal(t, "newer", *readings[0].Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
