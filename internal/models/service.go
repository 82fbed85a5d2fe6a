package models

const (
	CategoryHaircut = "haircut"
	CategoryBeard   = "beard"
	CategoryPremium = "premium"
)

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}
