package repository

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// AppointmentKVRepository stores the whole appointment list under one key
// and rewrites it on every change.
type AppointmentKVRepository struct {
	st storage.Storage
}

func NewAppointmentKVRepository(st storage.Storage) *AppointmentKVRepository {
	return &AppointmentKVRepository{st: st}
}

func (r *AppointmentKVRepository) List(ctx context.Context) ([]models.Appointment, error) {
	return storage.GetJSON(ctx, r.st, storage.KeyAppointments, []models.Appointment{})
}

func (r *AppointmentKVRepository) Append(ctx context.Context, ap models.Appointment) error {
	_, err := storage.UpdateJSON(ctx, r.st, storage.KeyAppointments, []models.Appointment{},
		func(list *[]models.Appointment) error {
			*list = append(*list, ap)
			return nil
		},
	)
	return err
}

var errAppointmentMissing = errors.New("appointment missing")

func (r *AppointmentKVRepository) Update(
	ctx context.Context,
	id string,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, bool, error) {

	var updated models.Appointment

	_, err := storage.UpdateJSON(ctx, r.st, storage.KeyAppointments, []models.Appointment{},
		func(list *[]models.Appointment) error {
			for i := range *list {
				if (*list)[i].ID != id {
					continue
				}
				if err := fn(&(*list)[i]); err != nil {
					return err
				}
				updated = (*list)[i]
				return nil
			}
			return errAppointmentMissing
		},
	)

	if errors.Is(err, errAppointmentMissing) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return &updated, true, nil
}
