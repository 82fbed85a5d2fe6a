// Package payment charges a confirmed booking through the configured
// gateway.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

var (
	ErrMissingCardFields = httperr.ErrBusinessf(
		"missing_card_fields", "Please fill in all card details",
	)
	ErrMissingCardToken = httperr.ErrBusiness("missing_card_token")
)

// Card is what the payment form submits. Token is the provider card token
// and is only needed by real gateways.
type Card struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Token  string `json:"token"`
}

func (c Card) Validate() error {
	for _, f := range []string{c.Name, c.Number, c.Expiry, c.CVV} {
		if strings.TrimSpace(f) == "" {
			return ErrMissingCardFields
		}
	}
	return nil
}

// Normalized returns the card as it is displayed back to the user.
func (c Card) Normalized() Card {
	c.Number = validators.FormatCardNumber(c.Number)
	c.Expiry = validators.FormatExpiry(c.Expiry)
	return c
}

type Charge struct {
	Amount      float64
	Currency    string
	Description string
	// Reference identifies the charge on the provider side.
	Reference string
	Email     string
}

type Result struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type Gateway interface {
	Charge(ctx context.Context, ch Charge, card Card) (Result, error)
}

// ErrDeclined builds the business error for a refused charge.
func ErrDeclined(reason string) error {
	if reason == "" {
		return httperr.ErrBusiness("payment_declined")
	}
	return httperr.ErrBusinessf("payment_declined", "Payment declined: %s", reason)
}

// ===============================
// Simulated
// ===============================

// SimulatedGateway waits a fixed delay and approves every charge.
type SimulatedGateway struct {
	clock clock.Clock
	delay time.Duration
}

func NewSimulatedGateway(clk clock.Clock, delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{clock: clk, delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, ch Charge, card Card) (Result, error) {
	if err := card.Validate(); err != nil {
		return Result{}, err
	}

	if err := g.clock.Sleep(ctx, g.delay); err != nil {
		return Result{}, fmt.Errorf("payment: simulated charge: %w", err)
	}

	return Result{
		Provider:  "simulated",
		Reference: "sim_" + ch.Reference,
		Status:    "approved",
	}, nil
}

// ===============================
// Factory
// ===============================

func New(cfg *config.Config, clk clock.Clock) (Gateway, error) {
	switch cfg.PaymentProvider {
	case "mercadopago":
		return NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	case "stripe":
		return NewStripeGateway(cfg.StripeSecretKey, cfg.PaymentCurrency), nil
	case "simulated", "":
		return NewSimulatedGateway(clk, cfg.PaymentDelay), nil
	}

	return nil, fmt.Errorf("payment: unsupported provider %q", cfg.PaymentProvider)
}
