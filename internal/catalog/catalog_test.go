package catalog

import (
	"math"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func ids(shops []models.Barbershop) []string {
	out := make([]string, len(shops))
	for i, s := range shops {
		out[i] = s.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShopsSearch(t *testing.T) {
	c := New()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4", "5"}},
		{"lusaka", []string{"1"}},
		{"AVENUE", []string{"2", "5"}},
		{"royal", []string{"3"}},
		{"nowhere", []string{}},
	}

	for _, tt := range tests {
		if got := ids(c.Shops(tt.query, nil)); !equal(got, tt.want) {
			t.Errorf("Shops(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestExplore(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		mutate func(f *Filter)
		want   []string
	}{
		{"defaults", func(f *Filter) {}, []string{"1", "2", "3", "4", "5"}},
		{"top rated", func(f *Filter) { f.Category = CategoryTopRated }, []string{"1", "5"}},
		{"premium", func(f *Filter) { f.Category = CategoryPremium }, []string{"5"}},
		{"nearby", func(f *Filter) { f.Category = CategoryNearby }, []string{"1"}},
		{"max distance", func(f *Filter) { f.MaxDistanceKm = 2 }, []string{"1", "2", "3"}},
		{"min rating", func(f *Filter) { f.MinRating = 4.7 }, []string{"1", "3", "5"}},
		{"query and category", func(f *Filter) { f.Query = "cuts"; f.Category = CategoryTopRated }, []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFilter()
			tt.mutate(&f)
			if got := ids(c.Explore(f)); !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExploreFromLocation(t *testing.T) {
	c := New()
	f := DefaultFilter()
	f.From = &models.Coordinates{Lat: -15.4167, Lng: 28.2833}

	got := c.Explore(f)
	if !equal(ids(got), []string{"1"}) {
		t.Fatalf("only the Lusaka shop is within 5 km, got %v", ids(got))
	}
	if got[0].DistanceKm != 0 {
		t.Errorf("expected 0 km, got %v", got[0].DistanceKm)
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("top rated"); !ok || c != CategoryTopRated {
		t.Errorf("unexpected %q %v", c, ok)
	}
	if c, ok := ParseCategory(""); !ok || c != CategoryAll {
		t.Errorf("empty should be All, got %q", c)
	}
	if _, ok := ParseCategory("cheap"); ok {
		t.Error("unknown category accepted")
	}
}

func TestShopAndReward(t *testing.T) {
	c := New()

	shop, ok := c.Shop("3")
	if !ok || shop.Name != "Kitwe Royal Cuts" || len(shop.Barbers) != 3 || len(shop.Services) != 12 {
		t.Fatalf("unexpected shop %+v", shop)
	}
	shop.Name = "changed"
	again, _ := c.Shop("3")
	if again.Name != "Kitwe Royal Cuts" {
		t.Error("Shop must return a copy")
	}

	if _, ok := c.Shop("99"); ok {
		t.Error("unknown shop found")
	}

	r, ok := c.Reward("r6")
	if !ok || r.PointsRequired != 300 {
		t.Errorf("unexpected reward %+v", r)
	}
	if len(c.Rewards()) != 6 {
		t.Errorf("expected 6 rewards")
	}
}

func TestDistanceKm(t *testing.T) {
	lusaka := models.Coordinates{Lat: -15.4167, Lng: 28.2833}
	kabwe := models.Coordinates{Lat: -14.4309, Lng: 28.4516}

	got := DistanceKm(lusaka, kabwe)
	if got < 100 || got > 120 {
		t.Errorf("Lusaka to Kabwe should be about 110 km, got %v", got)
	}
	if math.Abs(got*10-math.Round(got*10)) > 1e-9 {
		t.Errorf("distance not rounded to one decimal: %v", got)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 23 {
		t.Fatalf("expected 23 slots, got %d", len(slots))
	}
	if slots[0] != "9:00 AM" || slots[6] != "12:00 PM" || slots[22] != "8:00 PM" {
		t.Errorf("unexpected slots %v", slots)
	}
	if !IsTimeSlot("1:30 PM") || IsTimeSlot("8:30 PM") {
		t.Error("IsTimeSlot mismatch")
	}
}

func TestAvailableDates(t *testing.T) {
	// 23:30 UTC is already the next day in Lusaka (UTC+2).
	now := time.Date(2026, 4, 2, 23, 30, 0, 0, time.UTC)

	days := AvailableDates(now, "Africa/Lusaka")
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Value != "2026-04-03" || days[0].Weekday != "Fri" || days[0].Month != "Apr" {
		t.Errorf("unexpected first day %+v", days[0])
	}
	if days[6].Value != "2026-04-09" {
		t.Errorf("unexpected last day %+v", days[6])
	}

	if !IsAvailableDate("2026-04-05", now, "Africa/Lusaka") {
		t.Error("2026-04-05 should be bookable")
	}
	if IsAvailableDate("2026-04-02", now, "Africa/Lusaka") {
		t.Error("yesterday should not be bookable")
	}
}
