package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	paygw "github.com/BruksfildServices01/barber-booking/internal/payment"
	appointmentuc "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type Receipt struct {
	Appointment  *models.Appointment `json:"appointment"`
	PointsEarned int                 `json:"points_earned"`
	Payment      paygw.Result        `json:"payment"`
	CardNumber   string              `json:"card_number"`
}

// ======================================================
// USE CASE
// ======================================================

// PayBooking charges the confirmed draft, then books the appointment and
// credits the loyalty points. A failed charge leaves everything untouched.
type PayBooking struct {
	bookings booking.Repository
	users    session.Repository
	rewards  rewards.Repository
	create   *appointmentuc.CreateAppointment
	gateway  paygw.Gateway
	currency string
	audit    *audit.Dispatcher
}

func NewPayBooking(
	bookings booking.Repository,
	users session.Repository,
	rewardsRepo rewards.Repository,
	create *appointmentuc.CreateAppointment,
	gateway paygw.Gateway,
	currency string,
	audit *audit.Dispatcher,
) *PayBooking {
	return &PayBooking{
		bookings: bookings,
		users:    users,
		rewards:  rewardsRepo,
		create:   create,
		gateway:  gateway,
		currency: currency,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PayBooking) Execute(
	ctx context.Context,
	actor audit.Actor,
	card paygw.Card,
) (*Receipt, error) {

	// --------------------------------------------------
	// Draft and card
	// --------------------------------------------------
	draft, err := uc.bookings.GetDraft(ctx)
	if err != nil {
		return nil, err
	}

	// The draft is only payable while the wizard still sits on confirm.
	flow, err := uc.bookings.GetFlow(ctx)
	if errors.Is(err, booking.ErrFlowNotFound) {
		return nil, booking.ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	if flow.Step != booking.StepConfirm {
		return nil, booking.ErrDraftNotFound
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	card = card.Normalized()

	var email string
	if u, err := uc.users.Current(ctx); err == nil && u != nil {
		email = u.Email
	}

	// --------------------------------------------------
	// Charge
	// --------------------------------------------------
	result, err := uc.gateway.Charge(ctx, paygw.Charge{
		Amount:      draft.TotalPrice,
		Currency:    uc.currency,
		Description: describe(draft),
		Reference:   uuid.NewString(),
		Email:       email,
	}, card)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Fulfil
	// --------------------------------------------------
	ap, err := uc.create.Execute(ctx, actor, draft.AppointmentInput())
	if err != nil {
		return nil, fmt.Errorf("payment captured (%s) but booking failed: %w", result.Reference, err)
	}

	earned := rewards.PointsForBooking(draft.TotalPrice)
	if _, err := uc.rewards.AddPoints(ctx, earned); err != nil {
		return nil, err
	}
	if _, err := uc.rewards.IncrementVisits(ctx); err != nil {
		return nil, err
	}

	if err := uc.bookings.DeleteDraft(ctx); err != nil {
		return nil, err
	}
	if err := uc.bookings.DeleteFlow(ctx); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(actor.Event(
		audit.ActionPaymentCaptured,
		"appointment",
		ap.ID,
		map[string]any{
			"provider":      result.Provider,
			"reference":     result.Reference,
			"amount":        draft.TotalPrice,
			"points_earned": earned,
		},
	))

	return &Receipt{
		Appointment:  ap,
		PointsEarned: earned,
		Payment:      result,
		CardNumber:   validators.MaskCardNumber(card.Number),
	}, nil
}

func describe(d *booking.Draft) string {
	names := make([]string, len(d.Services))
	for i, s := range d.Services {
		names[i] = s.Name
	}
	return d.ShopName + ": " + strings.Join(names, ", ")
}
