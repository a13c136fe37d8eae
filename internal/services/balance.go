package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"arcana/pkg/utils"
)

// The debit and credit commands are pure: they take the current balance and
// return the next one, leaving persistence to the surrounding transaction.

func DebitBalance(current, cost decimal.Decimal) (decimal.Decimal, error) {
	if current.LessThan(cost) {
		return current, utils.ErrInsufficientFunds
	}
	return current.Sub(cost), nil
}

func CreditBalance(current, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return current, fmt.Errorf("%w: amount must be positive", utils.ErrInvalidInput)
	}
	return current.Add(amount.Round(2)), nil
}
