package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Barber struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar"`
	Specialty  string  `json:"specialty"`
	Rating     float64 `json:"rating"`
	Experience string  `json:"experience"`
}

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Avatar   string `json:"avatar"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

type Barbershop struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	DistanceKm   float64  `json:"distance_km"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	Images       []string `json:"images"`
	IsOpen       bool     `json:"is_open"`
	OpeningHours string   `json:"opening_hours"`
	Phone        string   `json:"phone"`
	WaitTimeMin  int      `json:"wait_time_min"`

	Barbers       []Barber    `json:"barbers"`
	Services      []Service   `json:"services"`
	Reviews       []Review    `json:"reviews"`
	SpecialOffers []string    `json:"special_offers,omitempty"`
	Coordinates   Coordinates `json:"coordinates"`
}

func (s *Barbershop) FindService(id string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

func (s *Barbershop) FindBarber(id string) (Barber, bool) {
	for _, b := range s.Barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}
