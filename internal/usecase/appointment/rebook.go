package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	bookinguc "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// RebookAppointment opens a new booking flow at the shop of an earlier
// appointment.
type RebookAppointment struct {
	repo  domain.Repository
	start *bookinguc.StartBooking
}

func NewRebookAppointment(
	repo domain.Repository,
	start *bookinguc.StartBooking,
) *RebookAppointment {
	return &RebookAppointment{
		repo:  repo,
		start: start,
	}
}

func (uc *RebookAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*booking.Flow, error) {

	ap, err := findAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	return uc.start.Execute(ctx, ap.ShopID)
}
