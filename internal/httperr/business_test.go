package httperr

import (
	"fmt"
	"testing"
)

func TestIsBusinessThroughWrapping(t *testing.T) {
	err := fmt.Errorf("redeem: %w", ErrBusiness("insufficient_points"))

	if !IsBusiness(err, "insufficient_points") {
		t.Error("expected wrapped business error to match")
	}
	if IsBusiness(err, "reward_not_found") {
		t.Error("unexpected match on other code")
	}
	if IsBusiness(fmt.Errorf("plain"), "insufficient_points") {
		t.Error("plain errors are not business errors")
	}
}

func TestErrBusinessf(t *testing.T) {
	be, ok := AsBusiness(ErrBusinessf("insufficient_points", "You need %d more points.", 50))
	if !ok {
		t.Fatal("expected business error")
	}
	if be.Code != "insufficient_points" || be.Message != "You need 50 more points." {
		t.Errorf("unexpected error %+v", be)
	}
	if be.Error() != "insufficient_points" {
		t.Errorf("Error() should be the code, got %q", be.Error())
	}
}
