// Package catalog serves the read-only shop, service and reward data the
// booking screens are built from.
package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ===============================
// Explore filters
// ===============================

type Category string

const (
	CategoryAll      Category = "All"
	CategoryTopRated Category = "Top Rated"
	CategoryOpenNow  Category = "Open Now"
	CategoryNearby   Category = "Nearby"
	CategoryPremium  Category = "Premium"
)

var Categories = []Category{
	CategoryAll,
	CategoryTopRated,
	CategoryOpenNow,
	CategoryNearby,
	CategoryPremium,
}

func ParseCategory(s string) (Category, bool) {
	if s == "" {
		return CategoryAll, true
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

const (
	DefaultMaxDistanceKm = 5
	DefaultMinRating     = 4
)

type Filter struct {
	Query         string
	MaxDistanceKm float64
	MinRating     float64
	Category      Category
	// From replaces each shop's listed distance with the distance from
	// this point.
	From *models.Coordinates
}

func DefaultFilter() Filter {
	return Filter{
		MaxDistanceKm: DefaultMaxDistanceKm,
		MinRating:     DefaultMinRating,
		Category:      CategoryAll,
	}
}

func (c Category) matches(shop models.Barbershop) bool {
	switch c {
	case CategoryTopRated:
		return shop.Rating >= 4.8
	case CategoryOpenNow:
		return shop.IsOpen
	case CategoryNearby:
		return shop.DistanceKm <= 1
	case CategoryPremium:
		return shop.Rating >= 4.9
	default:
		return true
	}
}

// ===============================
// Catalog
// ===============================

type Catalog struct {
	shops   []models.Barbershop
	rewards []models.Reward
}

// New returns the built-in catalog.
func New() *Catalog {
	return &Catalog{
		shops:   seedShops(),
		rewards: seedRewards(),
	}
}

// Shops is the home screen search: name or address contains query,
// ignoring case.
func (c *Catalog) Shops(query string, from *models.Coordinates) []models.Barbershop {
	out := []models.Barbershop{}
	for _, shop := range c.shops {
		if !matchesQuery(shop, query) {
			continue
		}
		out = append(out, withDistance(shop, from))
	}
	return out
}

func (c *Catalog) Explore(f Filter) []models.Barbershop {
	out := []models.Barbershop{}
	for _, shop := range c.shops {
		shop = withDistance(shop, f.From)

		if !matchesQuery(shop, f.Query) ||
			shop.DistanceKm > f.MaxDistanceKm ||
			shop.Rating < f.MinRating ||
			!f.Category.matches(shop) {
			continue
		}
		out = append(out, shop)
	}
	return out
}

func (c *Catalog) Shop(id string) (*models.Barbershop, bool) {
	for _, shop := range c.shops {
		if shop.ID == id {
			s := shop
			return &s, true
		}
	}
	return nil, false
}

func (c *Catalog) Rewards() []models.Reward {
	out := make([]models.Reward, len(c.rewards))
	copy(out, c.rewards)
	return out
}

func (c *Catalog) Reward(id string) (models.Reward, bool) {
	for _, r := range c.rewards {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}

func matchesQuery(shop models.Barbershop, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(shop.Name), q) ||
		strings.Contains(strings.ToLower(shop.Address), q)
}

func withDistance(shop models.Barbershop, from *models.Coordinates) models.Barbershop {
	if from != nil {
		shop.DistanceKm = DistanceKm(*from, shop.Coordinates)
	}
	return shop
}

// ===============================
// Distance
// ===============================

const earthRadiusKm = 6371

// DistanceKm is the haversine distance rounded to one decimal place.
func DistanceKm(from, to models.Coordinates) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(to.Lat - from.Lat)
	dLng := rad(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(from.Lat))*math.Cos(rad(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

// ===============================
// Dates and slots
// ===============================

const (
	DateLayout = "2006-01-02"
	SlotLayout = "3:04 PM"

	bookableDays = 7
	firstSlot    = 9 * time.Hour
	lastSlot     = 20 * time.Hour
	slotStep     = 30 * time.Minute
)

// TimeSlots are the bookable start times, every 30 minutes from 9:00 AM to
// 8:00 PM.
func TimeSlots() []string {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	var out []string
	for d := firstSlot; d <= lastSlot; d += slotStep {
		out = append(out, base.Add(d).Format(SlotLayout))
	}
	return out
}

func IsTimeSlot(s string) bool {
	for _, slot := range TimeSlots() {
		if slot == s {
			return true
		}
	}
	return false
}

type Day struct {
	Value   string `json:"value"`
	Weekday string `json:"weekday"`
	Day     int    `json:"day"`
	Month   string `json:"month"`
}

// AvailableDates lists today and the six following days in the shop time
// zone.
func AvailableDates(now time.Time, tz string) []Day {
	start := timezone.StartOfDay(now, tz)

	out := make([]Day, 0, bookableDays)
	for i := 0; i < bookableDays; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, Day{
			Value:   d.Format(DateLayout),
			Weekday: d.Format("Mon"),
			Day:     d.Day(),
			Month:   d.Format("Jan"),
		})
	}
	return out
}

func IsAvailableDate(date string, now time.Time, tz string) bool {
	for _, d := range AvailableDates(now, tz) {
		if d.Value == date {
			return true
		}
	}
	return false
}
