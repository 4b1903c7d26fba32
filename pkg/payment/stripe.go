package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeProvider implements Provider against Stripe's PaymentIntents API.
type StripeProvider struct {
	client *client.API
	config Config
}

// NewStripeProvider creates a Stripe-backed payment provider.
func NewStripeProvider(cfg Config) (*StripeProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	return &StripeProvider{client: sc, config: cfg}, nil
}

// CreateIntent creates a payment intent for the given dollar amount.
// The amount is converted to cents, the currency is fixed to USD, and Stripe
// picks the payment methods to offer. The processor's error message is
// surfaced verbatim; no retry is attempted.
func (p *StripeProvider) CreateIntent(ctx context.Context, amountDollars float64) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(MinorUnits(amountDollars)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := p.client.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return Intent{}, fmt.Errorf("%w: %s", ErrIntentFailed, stripeErr.Msg)
		}
		return Intent{}, errors.Join(ErrIntentFailed, err)
	}

	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
