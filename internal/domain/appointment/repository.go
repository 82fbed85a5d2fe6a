package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// List returns every appointment in insertion order.
	List(ctx context.Context) ([]models.Appointment, error)

	Append(ctx context.Context, ap models.Appointment) error

	// Update applies fn to the appointment with the given id and persists
	// the whole list. found is false when no appointment has that id.
	Update(
		ctx context.Context,
		id string,
		fn func(ap *models.Appointment) error,
	) (updated *models.Appointment, found bool, err error)
}
