package db_models

import (
	"github.com/shopspring/decimal"
)

type Account struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`

	// Wallet balance in currency units, two decimal places. Mutated only by
	// the reading debit and the deposit credit.
	Balance decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"balance"`

	// Optional birth profile, used as horoscope defaults.
	BirthDate     *string `json:"birth_date"`
	BirthTime     *string `json:"birth_time"` // free text "HH:MM"
	BirthLocation *string `json:"birth_location"`
	Gender        *string `json:"gender"`

	Readings []Reading `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
