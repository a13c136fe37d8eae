package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrMissingBirthDate   = errors.New("date of birth is required")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrDatabaseError      = errors.New("database error")
)
