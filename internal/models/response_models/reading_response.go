package response_models

import (
	"github.com/shopspring/decimal"

	"arcana/internal/models/db_models"
)

type ReadingResponse struct {
	Reading          *db_models.Reading `json:"data"`
	RemainingBalance decimal.Decimal    `json:"remaining_balance"`
}
