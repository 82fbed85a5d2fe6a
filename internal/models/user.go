package models

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`

	IsGuest     bool `json:"is_guest"`
	Points      int  `json:"points"`
	TotalVisits int  `json:"total_visits"`
}
