package booking

import (
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Draft is a confirmed selection waiting for payment.
type Draft struct {
	ShopID        string           `json:"shop_id"`
	ShopName      string           `json:"shop_name"`
	BarberID      string           `json:"barber_id"`
	BarberName    string           `json:"barber_name"`
	Services      []models.Service `json:"services"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	Notes         string           `json:"notes,omitempty"`
	TotalPrice    float64          `json:"total_price"`
	TotalDuration int              `json:"total_duration"`
}

func (d *Draft) AppointmentInput() appointment.NewInput {
	return appointment.NewInput{
		ShopID:     d.ShopID,
		ShopName:   d.ShopName,
		BarberID:   d.BarberID,
		BarberName: d.BarberName,
		Services:   d.Services,
		Date:       d.Date,
		Time:       d.Time,
		Notes:      d.Notes,
	}
}
