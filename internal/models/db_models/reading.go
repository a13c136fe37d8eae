package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReadingType string

const (
	ReadingTypeHoroscope ReadingType = "horoscope"
	ReadingTypePalm      ReadingType = "palm"
	ReadingTypeCoffee    ReadingType = "coffee"
)

type ReadingStatus string

const (
	ReadingStatusPending   ReadingStatus = "pending"
	ReadingStatusCompleted ReadingStatus = "completed"
	// Defined in the schema but never set by a request workflow: an error
	// before commit rolls the whole attempt back instead. Only the seeder
	// writes failed rows.
	ReadingStatusFailed ReadingStatus = "failed"
)

type Reading struct {
	BaseModel
	AccountID uuid.UUID      `gorm:"type:uuid;index" json:"account_id"`
	Type      ReadingType    `gorm:"index" json:"type"`
	InputData datatypes.JSON `gorm:"type:jsonb" json:"input_data"`
	Result    *string        `json:"result"`
	Status    ReadingStatus  `gorm:"default:pending;index" json:"status"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}
