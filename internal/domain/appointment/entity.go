package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type NewInput struct {
	ShopID     string
	ShopName   string
	BarberID   string
	BarberName string
	Services   []models.Service
	Date       string
	Time       string
	Notes      string
}

// ===============================
// Domain Actions
// ===============================

// New builds an upcoming appointment from a snapshot of the services.
func New(in NewInput, id string, now time.Time) models.Appointment {
	services := make([]models.Service, len(in.Services))
	copy(services, in.Services)

	return models.Appointment{
		ID:         id,
		ShopID:     in.ShopID,
		ShopName:   in.ShopName,
		BarberID:   in.BarberID,
		BarberName: in.BarberName,
		Services:   services,
		Date:       in.Date,
		Time:       in.Time,
		TotalPrice: TotalPrice(services),
		Status:     string(InitialStatus()),
		Notes:      in.Notes,
		CreatedAt:  now,
	}
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

func TotalPrice(services []models.Service) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	return total
}

func TotalDuration(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	return total
}

// Upcoming keeps insertion order.
func Upcoming(list []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		if Status(ap.Status) == StatusUpcoming {
			out = append(out, ap)
		}
	}
	return out
}

func Past(list []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		if IsPast(Status(ap.Status)) {
			out = append(out, ap)
		}
	}
	return out
}
