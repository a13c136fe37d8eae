package response_models

import "github.com/shopspring/decimal"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccountResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Balance       decimal.Decimal `json:"balance"`
	BirthDate     *string         `json:"birth_date"`
	BirthTime     *string         `json:"birth_time"`
	BirthLocation *string         `json:"birth_location"`
	Gender        *string         `json:"gender"`
}
