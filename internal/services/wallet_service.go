package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"arcana/internal/repositories"
	"arcana/pkg/utils"
)

type WalletServiceInterface interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, paymentMethodID string) (decimal.Decimal, error)
}

type WalletService struct {
	db          TxRunner
	accountRepo repositories.AccountRepository
	charger     PaymentChargerInterface
}

func NewWalletService(
	db TxRunner,
	accountRepo repositories.AccountRepository,
	charger PaymentChargerInterface,
) WalletServiceInterface {
	return &WalletService{
		db:          db,
		accountRepo: accountRepo,
		charger:     charger,
	}
}

func (w *WalletService) GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := w.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return decimal.Zero, utils.ErrDatabaseError
	}
	if account == nil {
		return decimal.Zero, utils.ErrAccountNotFound
	}
	return account.Balance, nil
}

// Deposit charges the processor first (when configured and a payment method
// token was supplied), then credits the balance. A failed or rejected
// charge leaves the balance untouched.
func (w *WalletService) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, paymentMethodID string) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, utils.ErrInvalidInput
	}

	if w.charger.Enabled() && paymentMethodID != "" {
		if err := w.charger.Charge(ctx, accountID.String(), amount, paymentMethodID); err != nil {
			log.Printf("Payment Error: %v", err)
			return decimal.Zero, err
		}
	} else {
		// Mock Mode: no processor configured, just add funds. Keeps dev
		// environments working without keys.
		log.Printf("Mocking deposit of %s for user %s", amount, accountID)
	}

	var newBalance decimal.Decimal
	err := w.db.Transaction(func(tx *gorm.DB) error {
		account, err := w.accountRepo.FindByIdTx(tx, accountID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if account == nil {
			return utils.ErrAccountNotFound
		}

		newBalance, err = CreditBalance(account.Balance, amount)
		if err != nil {
			return err
		}
		if err := w.accountRepo.UpdateBalanceTx(tx, accountID, newBalance); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}
