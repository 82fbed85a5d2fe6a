package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func svc(id string, price float64, dur int) models.Service {
	return models.Service{ID: id, Name: id, Price: price, DurationMin: dur}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		services []models.Service
		want     float64
	}{
		{"empty", nil, 0},
		{"single", []models.Service{svc("s1", 35, 30)}, 35},
		{"fade and line-up", []models.Service{svc("s1", 35, 30), svc("s6", 20, 15)}, 55},
		{"three", []models.Service{svc("s2", 40, 40), svc("s7", 20, 20), svc("s12", 80, 60)}, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPrice(tt.services); got != tt.want {
				t.Errorf("TotalPrice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSnapshotsServices(t *testing.T) {
	services := []models.Service{svc("s1", 35, 30), svc("s6", 20, 15)}
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	ap := New(NewInput{
		ShopID:     "1",
		ShopName:   "Lusaka Gents Salon",
		BarberID:   "b1",
		BarberName: "Marcus Johnson",
		Services:   services,
		Date:       "2026-04-03",
		Time:       "9:00 AM",
	}, "ap-1", now)

	if ap.Status != string(StatusUpcoming) {
		t.Errorf("expected upcoming, got %s", ap.Status)
	}
	if ap.TotalPrice != 55 {
		t.Errorf("expected total 55, got %v", ap.TotalPrice)
	}
	if !ap.CreatedAt.Equal(now) {
		t.Errorf("unexpected created_at %v", ap.CreatedAt)
	}

	services[0].Price = 999
	if ap.Services[0].Price != 35 {
		t.Error("appointment services must be a snapshot, not a live reference")
	}
}

func TestCancel(t *testing.T) {
	ap := models.Appointment{ID: "a", Status: string(StatusUpcoming)}
	if err := Cancel(&ap); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Errorf("expected cancelled, got %s", ap.Status)
	}

	for _, s := range []Status{StatusCancelled, StatusCompleted} {
		ap := models.Appointment{ID: "a", Status: string(s)}
		if err := Cancel(&ap); !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("cancel from %s: expected invalid_state, got %v", s, err)
		}
		if ap.Status != string(s) {
			t.Errorf("status changed from %s to %s", s, ap.Status)
		}
	}
}

func TestUpcomingAndPastFilters(t *testing.T) {
	list := []models.Appointment{
		{ID: "1", Status: string(StatusUpcoming)},
		{ID: "2", Status: string(StatusCancelled)},
		{ID: "3", Status: string(StatusUpcoming)},
		{ID: "4", Status: string(StatusCompleted)},
	}

	up := Upcoming(list)
	if len(up) != 2 || up[0].ID != "1" || up[1].ID != "3" {
		t.Errorf("unexpected upcoming %+v", up)
	}

	past := Past(list)
	if len(past) != 2 || past[0].ID != "2" || past[1].ID != "4" {
		t.Errorf("unexpected past %+v", past)
	}
}

func TestTotalDuration(t *testing.T) {
	if got := TotalDuration([]models.Service{svc("a", 1, 30), svc("b", 1, 15)}); got != 45 {
		t.Errorf("expected 45, got %d", got)
	}
}
