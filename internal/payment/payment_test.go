package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stripe/stripe-go/v76"

	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var validCard = Card{
	Name:   "T PHIRI",
	Number: "4242424242424242",
	Expiry: "1228",
	CVV:    "123",
	Token:  "tok_visa",
}

func TestCardValidate(t *testing.T) {
	if err := validCard.Validate(); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	for _, mutate := range []func(c *Card){
		func(c *Card) { c.Name = "" },
		func(c *Card) { c.Number = " " },
		func(c *Card) { c.Expiry = "" },
		func(c *Card) { c.CVV = "" },
	} {
		c := validCard
		mutate(&c)
		if err := c.Validate(); !httperr.IsBusiness(err, "missing_card_fields") {
			t.Errorf("expected missing_card_fields for %+v, got %v", c, err)
		}
	}

	n := validCard.Normalized()
	if n.Number != "4242 4242 4242 4242" || n.Expiry != "12/28" {
		t.Errorf("unexpected normalized card %+v", n)
	}
}

func TestSimulatedGatewayWaitsAndApproves(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC))
	g := NewSimulatedGateway(clk, 2*time.Second)

	res, err := g.Charge(context.Background(), Charge{Amount: 55, Reference: "ap-1"}, validCard)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != "approved" || res.Reference != "sim_ap-1" {
		t.Errorf("unexpected result %+v", res)
	}

	slept := clk.Slept()
	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Errorf("expected one 2s delay, got %v", slept)
	}
}

func TestSimulatedGatewayCancelled(t *testing.T) {
	g := NewSimulatedGateway(clock.NewFake(time.Now()), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Charge(ctx, Charge{Amount: 10}, validCard); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// ----- mercadopago -----

type fakeMPClient struct {
	mppayment.Client
	got mppayment.Request
	res *mppayment.Response
	err error
}

func (f *fakeMPClient) Create(_ context.Context, req mppayment.Request) (*mppayment.Response, error) {
	f.got = req
	return f.res, f.err
}

func TestMercadoPagoGateway(t *testing.T) {
	fake := &fakeMPClient{res: &mppayment.Response{ID: 987, Status: "approved"}}
	g := &MercadoPagoGateway{client: fake}

	res, err := g.Charge(context.Background(), Charge{
		Amount:      55,
		Description: "Lusaka Gents Salon",
		Reference:   "ap-1",
		Email:       "t@example.com",
	}, validCard)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reference != "987" || res.Provider != "mercadopago" {
		t.Errorf("unexpected result %+v", res)
	}
	if fake.got.TransactionAmount != 55 || fake.got.Token != "tok_visa" || fake.got.Payer.Email != "t@example.com" {
		t.Errorf("unexpected request %+v", fake.got)
	}

	fake.res = &mppayment.Response{ID: 988, Status: "rejected", StatusDetail: "cc_rejected_insufficient_amount"}
	if _, err := g.Charge(context.Background(), Charge{Amount: 55}, validCard); !httperr.IsBusiness(err, "payment_declined") {
		t.Errorf("expected payment_declined, got %v", err)
	}

	noToken := validCard
	noToken.Token = ""
	if _, err := g.Charge(context.Background(), Charge{Amount: 55}, noToken); !httperr.IsBusiness(err, "missing_card_token") {
		t.Errorf("expected missing_card_token, got %v", err)
	}
}

// ----- stripe -----

type fakeIntents struct {
	got *stripe.PaymentIntentParams
	pi  *stripe.PaymentIntent
	err error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.got = params
	return f.pi, f.err
}

func TestStripeGateway(t *testing.T) {
	fake := &fakeIntents{pi: &stripe.PaymentIntent{ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded}}
	g := &StripeGateway{intents: fake, currency: "zmw"}

	res, err := g.Charge(context.Background(), Charge{Amount: 55.5, Reference: "ap-1"}, validCard)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reference != "pi_1" {
		t.Errorf("unexpected result %+v", res)
	}
	if *fake.got.Amount != 5550 || *fake.got.Currency != "zmw" || *fake.got.PaymentMethod != "tok_visa" {
		t.Errorf("unexpected params amount=%d currency=%s", *fake.got.Amount, *fake.got.Currency)
	}

	fake.pi, fake.err = nil, &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."}
	if _, err := g.Charge(context.Background(), Charge{Amount: 55}, validCard); !httperr.IsBusiness(err, "payment_declined") {
		t.Errorf("expected payment_declined, got %v", err)
	}

	fake.err = &stripe.Error{Type: stripe.ErrorTypeAPI, Msg: "boom"}
	if _, err := g.Charge(context.Background(), Charge{Amount: 55}, validCard); err == nil || httperr.IsBusiness(err, "payment_declined") {
		t.Errorf("api errors are not declines, got %v", err)
	}
}

func TestNewFactory(t *testing.T) {
	g, err := New(&config.Config{PaymentProvider: "simulated"}, clock.Real{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(*SimulatedGateway); !ok {
		t.Errorf("expected simulated gateway, got %T", g)
	}

	g, err = New(&config.Config{PaymentProvider: "stripe", StripeSecretKey: "sk_test_x", PaymentCurrency: "ZMW"}, clock.Real{})
	if err != nil {
		t.Fatal(err)
	}
	if sg, ok := g.(*StripeGateway); !ok || sg.currency != "zmw" {
		t.Errorf("expected stripe gateway with zmw, got %T", g)
	}

	if _, err := New(&config.Config{PaymentProvider: "paypal"}, clock.Real{}); err == nil {
		t.Error("expected error for unknown provider")
	}
}
