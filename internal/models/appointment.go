package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	ShopID   string `json:"shop_id"`
	ShopName string `json:"shop_name"`

	BarberID   string `json:"barber_id"`
	BarberName string `json:"barber_name"`

	// Snapshot of the services at booking time.
	Services []Service `json:"services"`

	Date string `json:"date"`
	Time string `json:"time"`

	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
