package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"arcana/pkg/utils"
)

// PaymentChargerInterface is the external payment processor. Enabled
// reports whether a credential is configured; without one the wallet runs
// in mock mode and deposits proceed without a charge.
type PaymentChargerInterface interface {
	Enabled() bool
	Charge(ctx context.Context, accountID string, amount decimal.Decimal, paymentMethodID string) error
}

type StripeCharger struct {
	secret string
}

func NewStripeCharger(secret string) PaymentChargerInterface {
	return &StripeCharger{secret: secret}
}

func (s *StripeCharger) Enabled() bool {
	return s.secret != ""
}

// Charge creates and confirms a PaymentIntent in one call. Anything short
// of "succeeded" is a payment failure and no balance change happens.
func (s *StripeCharger) Charge(ctx context.Context, accountID string, amount decimal.Decimal, paymentMethodID string) error {
	sc := &client.API{}
	sc.Init(s.secret, nil)

	cents := amount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(cents),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(fmt.Sprintf("Wallet Deposit for User #%s", accountID)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	intent, err := sc.PaymentIntents.New(params)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrPaymentFailed, err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("%w: payment failed or requires action", utils.ErrPaymentFailed)
	}
	return nil
}
