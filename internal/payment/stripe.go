package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type paymentIntents interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type StripeGateway struct {
	intents  paymentIntents
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeGateway{
		intents:  api.PaymentIntents,
		currency: strings.ToLower(currency),
	}
}

// Charge confirms a payment intent immediately. Amounts are sent in minor
// units.
func (g *StripeGateway) Charge(ctx context.Context, ch Charge, card Card) (Result, error) {
	if err := card.Validate(); err != nil {
		return Result{}, err
	}
	if card.Token == "" {
		return Result{}, ErrMissingCardToken
	}

	currency := g.currency
	if ch.Currency != "" {
		currency = strings.ToLower(ch.Currency)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(math.Round(ch.Amount * 100))),
		Currency:      stripe.String(currency),
		Description:   stripe.String(ch.Description),
		PaymentMethod: stripe.String(card.Token),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("reference", ch.Reference)
	if ch.Email != "" {
		params.ReceiptEmail = stripe.String(ch.Email)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return Result{}, ErrDeclined(stripeErr.Msg)
		}
		return Result{}, fmt.Errorf("payment: stripe create intent: %w", err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return Result{}, ErrDeclined(string(pi.Status))
	}

	return Result{
		Provider:  "stripe",
		Reference: pi.ID,
		Status:    string(pi.Status),
	}, nil
}
