package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Scope string

const (
	ScopeUpcoming Scope = "upcoming"
	ScopePast     Scope = "past"
	ScopeAll      Scope = "all"
)

func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "":
		return ScopeUpcoming, nil
	case ScopeUpcoming, ScopePast, ScopeAll:
		return Scope(s), nil
	}
	return "", httperr.ErrBusiness("invalid_scope")
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute filters on every call, in insertion order.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	scope Scope,
) ([]models.Appointment, error) {

	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch scope {
	case ScopePast:
		return domain.Past(list), nil
	case ScopeAll:
		return list, nil
	default:
		return domain.Upcoming(list), nil
	}
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {
	return findAppointment(ctx, uc.repo, appointmentID)
}

func findAppointment(
	ctx context.Context,
	repo domain.Repository,
	id string,
) (*models.Appointment, error) {

	list, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}
