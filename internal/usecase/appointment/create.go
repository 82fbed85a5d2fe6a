package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CreateAppointment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor audit.Actor,
	in domain.NewInput,
) (*models.Appointment, error) {

	ap := domain.New(in, uuid.NewString(), uc.clock.Now())

	if err := uc.repo.Append(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(actor.Event(
		audit.ActionAppointmentCreated,
		"appointment",
		ap.ID,
		map[string]any{
			"shop_id":     ap.ShopID,
			"total_price": ap.TotalPrice,
		},
	))

	return &ap, nil
}
