package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels an upcoming appointment. Cancelling one that is already
// cancelled or completed changes nothing and returns it as stored. An
// unknown id is a no-op and yields a nil appointment.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor audit.Actor,
	appointmentID string,
) (*models.Appointment, error) {

	ap, found, err := uc.repo.Update(ctx, appointmentID, domain.Cancel)
	switch {
	case httperr.IsBusiness(err, "invalid_state"):
		return findAppointment(ctx, uc.repo, appointmentID)
	case err != nil:
		return nil, err
	case !found:
		return nil, nil
	}

	uc.audit.Dispatch(actor.Event(
		audit.ActionAppointmentCancel,
		"appointment",
		ap.ID,
		nil,
	))

	return ap, nil
}
