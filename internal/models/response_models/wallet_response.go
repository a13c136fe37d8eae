package response_models

import "github.com/shopspring/decimal"

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type DepositResponse struct {
	Balance decimal.Decimal `json:"balance"`
	Message string          `json:"message"`
}
