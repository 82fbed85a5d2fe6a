package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
)

const mpStatusApproved = "approved"

type MercadoPagoGateway struct {
	client mppayment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payment: mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{client: mppayment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, ch Charge, card Card) (Result, error) {
	if err := card.Validate(); err != nil {
		return Result{}, err
	}
	if card.Token == "" {
		return Result{}, ErrMissingCardToken
	}

	req := mppayment.Request{
		TransactionAmount: ch.Amount,
		Description:       ch.Description,
		ExternalReference: ch.Reference,
		Token:             card.Token,
		Installments:      1,
		Payer: &mppayment.PayerRequest{
			Email: ch.Email,
		},
	}

	res, err := g.client.Create(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("payment: mercadopago create: %w", err)
	}

	if res.Status != mpStatusApproved {
		return Result{}, ErrDeclined(res.StatusDetail)
	}

	return Result{
		Provider:  "mercadopago",
		Reference: fmt.Sprint(res.ID),
		Status:    res.Status,
	}, nil
}
