package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ======================================================
// Services
// ======================================================

type ToggleService struct {
	repo    domain.Repository
	catalog *catalog.Catalog
}

func NewToggleService(repo domain.Repository, cat *catalog.Catalog) *ToggleService {
	return &ToggleService{repo: repo, catalog: cat}
}

func (uc *ToggleService) Execute(ctx context.Context, serviceID string) (*domain.Flow, error) {
	return edit(ctx, uc.repo, func(f *domain.Flow) error {
		shop, err := shopOf(uc.catalog, f)
		if err != nil {
			return err
		}

		svc, ok := shop.FindService(serviceID)
		if !ok {
			return httperr.ErrBusiness("service_not_found")
		}
		return f.ToggleService(svc)
	})
}

// ======================================================
// Barber
// ======================================================

type SelectBarber struct {
	repo    domain.Repository
	catalog *catalog.Catalog
}

func NewSelectBarber(repo domain.Repository, cat *catalog.Catalog) *SelectBarber {
	return &SelectBarber{repo: repo, catalog: cat}
}

func (uc *SelectBarber) Execute(ctx context.Context, choice domain.BarberChoice) (*domain.Flow, error) {
	return edit(ctx, uc.repo, func(f *domain.Flow) error {
		shop, err := shopOf(uc.catalog, f)
		if err != nil {
			return err
		}

		if !choice.IsZero() {
			if _, err := choice.Resolve(shop); err != nil {
				return err
			}
		}
		return f.SelectBarber(choice)
	})
}

// ======================================================
// Date & time
// ======================================================

type DateTimeInput struct {
	Date string
	Time string
}

// SelectDateTime accepts only the next seven days in the shop time zone and
// the fixed slot list. Empty fields are left as they are.
type SelectDateTime struct {
	repo     domain.Repository
	clock    clock.Clock
	timezone string
}

func NewSelectDateTime(repo domain.Repository, clk clock.Clock, tz string) *SelectDateTime {
	return &SelectDateTime{repo: repo, clock: clk, timezone: tz}
}

func (uc *SelectDateTime) Execute(ctx context.Context, in DateTimeInput) (*domain.Flow, error) {
	if in.Date != "" && !catalog.IsAvailableDate(in.Date, uc.clock.Now(), uc.timezone) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if in.Time != "" && !catalog.IsTimeSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	return edit(ctx, uc.repo, func(f *domain.Flow) error {
		if in.Date != "" {
			if err := f.SelectDate(in.Date); err != nil {
				return err
			}
		}
		if in.Time != "" {
			if err := f.SelectTime(in.Time); err != nil {
				return err
			}
		}
		return nil
	})
}

// ======================================================
// Notes
// ======================================================

const maxNotesLength = 500

type SetNotes struct {
	repo domain.Repository
}

func NewSetNotes(repo domain.Repository) *SetNotes {
	return &SetNotes{repo: repo}
}

func (uc *SetNotes) Execute(ctx context.Context, notes string) (*domain.Flow, error) {
	if len([]rune(notes)) > maxNotesLength {
		return nil, httperr.ErrBusiness("notes_too_long")
	}

	return edit(ctx, uc.repo, func(f *domain.Flow) error {
		return f.SetNotes(notes)
	})
}
