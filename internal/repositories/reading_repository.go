package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"arcana/internal/models/db_models"
)

type ReadingRepository interface {
	InsertTx(tx *gorm.DB, reading *db_models.Reading) error
	CompleteTx(tx *gorm.DB, reading *db_models.Reading, result string) error

	// ListCompletedByAccount returns the caller's completed readings only,
	// newest first.
	ListCompletedByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Reading, error)
}

type readingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) ReadingRepository {
	return &readingRepository{
		db: db,
	}
}

func (r *readingRepository) InsertTx(tx *gorm.DB, reading *db_models.Reading) error {
	return tx.Create(reading).Error
}

func (r *readingRepository) CompleteTx(tx *gorm.DB, reading *db_models.Reading, result string) error {
	reading.Result = &result
	reading.Status = db_models.ReadingStatusCompleted
	return tx.Model(reading).Updates(map[string]interface{}{
		"result": result,
		"status": db_models.ReadingStatusCompleted,
	}).Error
}

func (r *readingRepository) ListCompletedByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Reading, error) {
	var readings []db_models.Reading
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND status = ?", accountID, db_models.ReadingStatusCompleted).
		Order("created_at DESC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}
