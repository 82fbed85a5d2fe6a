package repository

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

type BookingKVRepository struct {
	st storage.Storage
}

func NewBookingKVRepository(st storage.Storage) *BookingKVRepository {
	return &BookingKVRepository{st: st}
}

// --------------------------------------------------
// Flow
// --------------------------------------------------

func (r *BookingKVRepository) GetFlow(ctx context.Context) (*booking.Flow, error) {
	f, err := storage.GetJSON[*booking.Flow](ctx, r.st, storage.KeyBooking, nil)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, booking.ErrFlowNotFound
	}
	return f, nil
}

func (r *BookingKVRepository) SaveFlow(ctx context.Context, f *booking.Flow) error {
	return storage.SetJSON(ctx, r.st, storage.KeyBooking, f)
}

func (r *BookingKVRepository) UpdateFlow(
	ctx context.Context,
	fn func(f *booking.Flow) error,
) (*booking.Flow, error) {

	return storage.UpdateJSON[*booking.Flow](ctx, r.st, storage.KeyBooking, nil,
		func(f **booking.Flow) error {
			if *f == nil {
				return booking.ErrFlowNotFound
			}
			return fn(*f)
		},
	)
}

func (r *BookingKVRepository) DeleteFlow(ctx context.Context) error {
	return r.st.Delete(ctx, storage.KeyBooking)
}

// --------------------------------------------------
// Draft
// --------------------------------------------------

func (r *BookingKVRepository) GetDraft(ctx context.Context) (*booking.Draft, error) {
	d, err := storage.GetJSON[*booking.Draft](ctx, r.st, storage.KeyDraft, nil)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, booking.ErrDraftNotFound
	}
	return d, nil
}

func (r *BookingKVRepository) SaveDraft(ctx context.Context, d *booking.Draft) error {
	return storage.SetJSON(ctx, r.st, storage.KeyDraft, d)
}

func (r *BookingKVRepository) DeleteDraft(ctx context.Context) error {
	return r.st.Delete(ctx, storage.KeyDraft)
}
