package booking

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

func setup(t *testing.T) (context.Context, *repository.BookingKVRepository, *catalog.Catalog) {
	t.Helper()
	return context.Background(),
		repository.NewBookingKVRepository(storage.NewMemoryStorage()),
		catalog.New()
}

func TestStartBookingUnknownShop(t *testing.T) {
	ctx, repo, cat := setup(t)

	if _, err := NewStartBooking(repo, cat).Execute(ctx, "42"); !httperr.IsBusiness(err, "shop_not_found") {
		t.Fatalf("expected shop_not_found, got %v", err)
	}
	if _, err := NewGetBooking(repo).Execute(ctx); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("no flow should exist, got %v", err)
	}
}

func TestStartBookingDiscardsOldDraft(t *testing.T) {
	ctx, repo, cat := setup(t)
	_ = repo.SaveDraft(ctx, &domain.Draft{ShopID: "2"})

	if _, err := NewStartBooking(repo, cat).Execute(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetDraft(ctx); !httperr.IsBusiness(err, "draft_not_found") {
		t.Errorf("old draft should be gone, got %v", err)
	}
}

func TestToggleUnknownService(t *testing.T) {
	ctx, repo, cat := setup(t)
	_, _ = NewStartBooking(repo, cat).Execute(ctx, "1")

	if _, err := NewToggleService(repo, cat).Execute(ctx, "s99"); !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("expected service_not_found, got %v", err)
	}
}

func TestNextWithoutServicesIsRejected(t *testing.T) {
	ctx, repo, cat := setup(t)
	_, _ = NewStartBooking(repo, cat).Execute(ctx, "1")

	_, _, err := NewNextStep(repo, cat).Execute(ctx)
	if !httperr.IsBusiness(err, "cannot_proceed") {
		t.Fatalf("expected cannot_proceed, got %v", err)
	}

	f, _ := repo.GetFlow(ctx)
	if f.Step != domain.StepServices {
		t.Errorf("step moved to %s", f.Step)
	}
}

func TestSelectBarberOfAnotherShop(t *testing.T) {
	ctx, repo, cat := setup(t)
	_, _ = NewStartBooking(repo, cat).Execute(ctx, "1")
	_, _ = NewToggleService(repo, cat).Execute(ctx, "s1")
	_, _, _ = NewNextStep(repo, cat).Execute(ctx)

	if _, err := NewSelectBarber(repo, cat).Execute(ctx, domain.Specific("b10")); !httperr.IsBusiness(err, "barber_not_found") {
		t.Errorf("b10 works at shop 5, expected barber_not_found, got %v", err)
	}

	f, err := NewSelectBarber(repo, cat).Execute(ctx, domain.AnyAvailable())
	if err != nil {
		t.Fatal(err)
	}
	if !f.Barber.IsAny() {
		t.Errorf("expected any available, got %+v", f.Barber)
	}
}

func TestSelectDateTimeValidation(t *testing.T) {
	ctx, repo, cat := setup(t)
	clk := clock.NewFake(time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC))

	_, _ = NewStartBooking(repo, cat).Execute(ctx, "1")
	_, _ = NewToggleService(repo, cat).Execute(ctx, "s1")
	_, _, _ = NewNextStep(repo, cat).Execute(ctx)
	_, _ = NewSelectBarber(repo, cat).Execute(ctx, domain.AnyAvailable())
	_, _, _ = NewNextStep(repo, cat).Execute(ctx)

	uc := NewSelectDateTime(repo, clk, "Africa/Lusaka")

	tests := []struct {
		name string
		in   DateTimeInput
		code string
	}{
		{"past date", DateTimeInput{Date: "2026-04-01"}, "invalid_date"},
		{"too far", DateTimeInput{Date: "2026-04-09"}, "invalid_date"},
		{"bad slot", DateTimeInput{Time: "8:30 PM"}, "invalid_time"},
	}
	for _, tt := range tests {
		if _, err := uc.Execute(ctx, tt.in); !httperr.IsBusiness(err, tt.code) {
			t.Errorf("%s: expected %s, got %v", tt.name, tt.code, err)
		}
	}

	if _, err := uc.Execute(ctx, DateTimeInput{Date: "2026-04-08"}); err != nil {
		t.Fatal(err)
	}
	f, err := uc.Execute(ctx, DateTimeInput{Time: "8:00 PM"})
	if err != nil {
		t.Fatal(err)
	}
	if f.Date != "2026-04-08" || f.Time != "8:00 PM" {
		t.Errorf("unexpected selection %s %s", f.Date, f.Time)
	}
}

func TestBackFromFirstStepExits(t *testing.T) {
	ctx, repo, cat := setup(t)
	_, _ = NewStartBooking(repo, cat).Execute(ctx, "1")
	_, _ = NewToggleService(repo, cat).Execute(ctx, "s1")
	_, _, _ = NewNextStep(repo, cat).Execute(ctx)

	back := NewBackStep(repo)

	f, exited, err := back.Execute(ctx)
	if err != nil || exited {
		t.Fatalf("first back: exited=%v err=%v", exited, err)
	}
	if f.Step != domain.StepServices || !f.IsSelected("s1") {
		t.Errorf("unexpected flow after back %+v", f)
	}

	_, exited, err = back.Execute(ctx)
	if err != nil || !exited {
		t.Fatalf("second back should exit: exited=%v err=%v", exited, err)
	}
	if _, err := repo.GetFlow(ctx); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("flow should be discarded, got %v", err)
	}
}

func TestSetNotesOnConfirm(t *testing.T) {
	ctx, repo, _ := setup(t)
	_ = repo.SaveFlow(ctx, &domain.Flow{ShopID: "1", Step: domain.StepConfirm})

	f, err := NewSetNotes(repo).Execute(ctx, "skin fade please")
	if err != nil {
		t.Fatal(err)
	}
	if f.Notes != "skin fade please" {
		t.Errorf("notes not stored: %q", f.Notes)
	}

	long := make([]rune, maxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := NewSetNotes(repo).Execute(ctx, string(long)); !httperr.IsBusiness(err, "notes_too_long") {
		t.Errorf("expected notes_too_long, got %v", err)
	}
}

func TestEditsDropConfirmedDraft(t *testing.T) {
	ctx, repo, _ := setup(t)

	cases := []struct {
		name string
		edit func() error
	}{
		{"notes", func() error {
			_, err := NewSetNotes(repo).Execute(ctx, "shorter on the sides")
			return err
		}},
		{"back", func() error {
			_, _, err := NewBackStep(repo).Execute(ctx)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_ = repo.SaveFlow(ctx, &domain.Flow{ShopID: "1", Step: domain.StepConfirm})
			_ = repo.SaveDraft(ctx, &domain.Draft{ShopID: "1", TotalPrice: 55})

			if err := tc.edit(); err != nil {
				t.Fatal(err)
			}
			if _, err := repo.GetDraft(ctx); !httperr.IsBusiness(err, "draft_not_found") {
				t.Errorf("draft should be dropped after %s, got %v", tc.name, err)
			}
		})
	}
}

func TestFailedEditKeepsDraft(t *testing.T) {
	ctx, repo, cat := setup(t)
	_ = repo.SaveFlow(ctx, &domain.Flow{ShopID: "1", Step: domain.StepConfirm})
	_ = repo.SaveDraft(ctx, &domain.Draft{ShopID: "1"})

	if _, err := NewToggleService(repo, cat).Execute(ctx, "s1"); !httperr.IsBusiness(err, "wrong_step") {
		t.Fatalf("expected wrong_step, got %v", err)
	}
	if _, err := repo.GetDraft(ctx); err != nil {
		t.Errorf("rejected edit must not drop the draft: %v", err)
	}
}
