package booking

import (
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Steps
// ===============================

type Step string

const (
	StepServices Step = "services"
	StepBarber   Step = "barber"
	StepDateTime Step = "datetime"
	StepConfirm  Step = "confirm"
)

var steps = []Step{StepServices, StepBarber, StepDateTime, StepConfirm}

func (s Step) index() int {
	for i, st := range steps {
		if st == s {
			return i
		}
	}
	return -1
}

// Position is the 1-based place of s in the wizard.
func (s Step) Position() int {
	return s.index() + 1
}

func Steps() []Step {
	return append([]Step(nil), steps...)
}

// ===============================
// Errors
// ===============================

// ErrExitFlow is returned by Back on the first step. The caller leaves the
// wizard.
var ErrExitFlow = errors.New("booking: exit flow")

var (
	ErrCannotProceed  = httperr.ErrBusiness("cannot_proceed")
	ErrWrongStep      = httperr.ErrBusiness("wrong_step")
	ErrNoBarber       = httperr.ErrBusiness("barber_required")
	ErrBarberNotFound = httperr.ErrBusiness("barber_not_found")
)

// ===============================
// Flow
// ===============================

// Flow is the state of the booking wizard for one shop. Every selection is
// kept when moving between steps.
type Flow struct {
	ShopID   string           `json:"shop_id"`
	Step     Step             `json:"step"`
	Services []models.Service `json:"services"`
	Barber   BarberChoice     `json:"barber"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Notes    string           `json:"notes"`
}

func NewFlow(shopID string) *Flow {
	return &Flow{
		ShopID:   shopID,
		Step:     StepServices,
		Services: []models.Service{},
	}
}

func (f *Flow) requireStep(s Step) error {
	if f.Step != s {
		return ErrWrongStep
	}
	return nil
}

// ToggleService adds the service when absent and removes it when present.
func (f *Flow) ToggleService(svc models.Service) error {
	if err := f.requireStep(StepServices); err != nil {
		return err
	}

	for i, s := range f.Services {
		if s.ID == svc.ID {
			f.Services = append(f.Services[:i:i], f.Services[i+1:]...)
			return nil
		}
	}

	f.Services = append(f.Services, svc)
	return nil
}

func (f *Flow) IsSelected(serviceID string) bool {
	for _, s := range f.Services {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}

func (f *Flow) SelectBarber(c BarberChoice) error {
	if err := f.requireStep(StepBarber); err != nil {
		return err
	}
	if c.IsZero() {
		return ErrNoBarber
	}

	f.Barber = c
	return nil
}

func (f *Flow) SelectDate(date string) error {
	if err := f.requireStep(StepDateTime); err != nil {
		return err
	}
	f.Date = date
	return nil
}

func (f *Flow) SelectTime(t string) error {
	if err := f.requireStep(StepDateTime); err != nil {
		return err
	}
	f.Time = t
	return nil
}

func (f *Flow) SetNotes(notes string) error {
	if err := f.requireStep(StepConfirm); err != nil {
		return err
	}
	f.Notes = notes
	return nil
}

func (f *Flow) CanProceed() bool {
	switch f.Step {
	case StepServices:
		return len(f.Services) > 0
	case StepBarber:
		return !f.Barber.IsZero()
	case StepDateTime:
		return f.Date != "" && f.Time != ""
	case StepConfirm:
		return true
	default:
		return false
	}
}

// Next moves to the following step. On the confirm step it returns the
// draft to pay for instead and the flow stays where it is.
func (f *Flow) Next(shop *models.Barbershop) (*Draft, error) {
	if !f.CanProceed() {
		return nil, ErrCannotProceed
	}

	if f.Step == StepConfirm {
		return f.draft(shop)
	}

	f.Step = steps[f.Step.index()+1]
	return nil, nil
}

// Back returns ErrExitFlow on the first step.
func (f *Flow) Back() error {
	i := f.Step.index()
	if i <= 0 {
		return ErrExitFlow
	}

	f.Step = steps[i-1]
	return nil
}

func (f *Flow) TotalPrice() float64 {
	return appointment.TotalPrice(f.Services)
}

func (f *Flow) TotalDuration() int {
	return appointment.TotalDuration(f.Services)
}

func (f *Flow) draft(shop *models.Barbershop) (*Draft, error) {
	barber, err := f.Barber.Resolve(shop)
	if err != nil {
		return nil, err
	}

	services := make([]models.Service, len(f.Services))
	copy(services, f.Services)

	return &Draft{
		ShopID:        shop.ID,
		ShopName:      shop.Name,
		BarberID:      barber.ID,
		BarberName:    barber.Name,
		Services:      services,
		Date:          f.Date,
		Time:          f.Time,
		Notes:         f.Notes,
		TotalPrice:    appointment.TotalPrice(services),
		TotalDuration: appointment.TotalDuration(services),
	}, nil
}
