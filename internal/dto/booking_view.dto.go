package dto

import (
	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// BookingView is everything the wizard screen renders for the current step.
type BookingView struct {
	ShopID    string       `json:"shop_id"`
	ShopName  string       `json:"shop_name"`
	Step      booking.Step `json:"step"`
	StepIndex int          `json:"step_index"`
	StepCount int          `json:"step_count"`

	Services      []models.Service     `json:"services"`
	Barber        booking.BarberChoice `json:"barber"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Notes         string               `json:"notes"`
	TotalPrice    float64              `json:"total_price"`
	TotalDuration int                  `json:"total_duration"`
	CanProceed    bool                 `json:"can_proceed"`

	AvailableServices []models.Service `json:"available_services"`
	AvailableBarbers  []models.Barber  `json:"available_barbers"`
	AvailableDates    []catalog.Day    `json:"available_dates"`
	TimeSlots         []string         `json:"time_slots"`
}

// NewBookingView lists the "any available" option ahead of the shop's
// barbers.
func NewBookingView(f *booking.Flow, shop *models.Barbershop, dates []catalog.Day) BookingView {
	v := BookingView{
		ShopID:        f.ShopID,
		Step:          f.Step,
		StepIndex:     f.Step.Position(),
		StepCount:     len(booking.Steps()),
		Services:      f.Services,
		Barber:        f.Barber,
		Date:          f.Date,
		Time:          f.Time,
		Notes:         f.Notes,
		TotalPrice:    f.TotalPrice(),
		TotalDuration: f.TotalDuration(),
		CanProceed:    f.CanProceed(),

		AvailableServices: []models.Service{},
		AvailableBarbers:  []models.Barber{booking.AnyAvailableBarber},
		AvailableDates:    dates,
		TimeSlots:         catalog.TimeSlots(),
	}

	if shop != nil {
		v.ShopName = shop.Name
		v.AvailableServices = shop.Services
		v.AvailableBarbers = append(v.AvailableBarbers, shop.Barbers...)
	}
	return v
}
