package services

import (
	"context"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// Currency is fixed for every payment intent.
const Currency = string(stripe.CurrencyUSD)

const intentTimeout = 5 * time.Second

// IntentCreator asks the card processor for a client-payable intent and
// returns the secret the client completes the charge with.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// StripeIntents creates card PaymentIntents through the Stripe API.
type StripeIntents struct{}

func NewStripeIntents(secretKey string) *StripeIntents {
	stripe.Key = secretKey
	return &StripeIntents{}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, intentTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
