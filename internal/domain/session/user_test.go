package session

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var now = time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

func TestNewLoginUser(t *testing.T) {
	u, err := NewLoginUser("tendai@example.com", "secret", now)
	if err != nil {
		t.Fatal(err)
	}
	if u.Name != "tendai" || u.Email != "tendai@example.com" || u.IsGuest {
		t.Errorf("unexpected user %+v", u)
	}
	if u.ID != "user_1775116800000" {
		t.Errorf("unexpected id %s", u.ID)
	}

	tests := []struct{ email, password string }{
		{"", "secret"},
		{"a@b.c", ""},
		{"   ", "  "},
	}
	for _, tt := range tests {
		if _, err := NewLoginUser(tt.email, tt.password, now); !httperr.IsBusiness(err, "missing_credentials") {
			t.Errorf("login(%q, %q): expected missing_credentials, got %v", tt.email, tt.password, err)
		}
	}
}

func TestNewRegisteredUser(t *testing.T) {
	u, err := NewRegisteredUser("Tendai Phiri", "t@example.com", "pw", "+260 97 000 0000", now)
	if err != nil {
		t.Fatal(err)
	}
	if u.Name != "Tendai Phiri" || u.Phone != "+260 97 000 0000" || u.Points != 0 || u.TotalVisits != 0 {
		t.Errorf("unexpected user %+v", u)
	}

	if _, err := NewRegisteredUser("", "t@example.com", "pw", "", now); !httperr.IsBusiness(err, "missing_required_fields") {
		t.Errorf("expected missing_required_fields, got %v", err)
	}
}

func TestNewGuest(t *testing.T) {
	g := NewGuest(now)
	if !g.IsGuest || g.Name != "Guest" || g.ID != "guest_1775116800000" {
		t.Errorf("unexpected guest %+v", g)
	}
}

func TestPatchApply(t *testing.T) {
	u := &models.User{Name: "Old", Email: "old@example.com", Phone: "1"}
	name := "New"
	phone := ""

	Patch{Name: &name, Phone: &phone}.Apply(u)

	if u.Name != "New" || u.Email != "old@example.com" || u.Phone != "" {
		t.Errorf("unexpected user after patch %+v", u)
	}
}
