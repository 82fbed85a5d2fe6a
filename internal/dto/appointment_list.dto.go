package dto

import (
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AppointmentListDTO is the card shown in the appointment lists.
type AppointmentListDTO struct {
	ID            string   `json:"id"`
	ShopID        string   `json:"shop_id"`
	ShopName      string   `json:"shop_name"`
	BarberName    string   `json:"barber_name"`
	Services      []string `json:"services"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	TotalPrice    float64  `json:"total_price"`
	TotalDuration int      `json:"total_duration"`
	Status        string   `json:"status"`
	CanCancel     bool     `json:"can_cancel"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Name)
	}

	return AppointmentListDTO{
		ID:            ap.ID,
		ShopID:        ap.ShopID,
		ShopName:      ap.ShopName,
		BarberName:    ap.BarberName,
		Services:      names,
		Date:          ap.Date,
		Time:          ap.Time,
		TotalPrice:    ap.TotalPrice,
		TotalDuration: appointment.TotalDuration(ap.Services),
		Status:        ap.Status,
		CanCancel:     appointment.CanCancel(appointment.Status(ap.Status)) == nil,
	}
}

func NewAppointmentList(list []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(list))
	for _, ap := range list {
		out = append(out, NewAppointmentListDTO(ap))
	}
	return out
}
