package session

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/session"
)

// Logout clears the user. Points, visits and appointments stay on the
// device.
type Logout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLogout(repo domain.Repository, audit *audit.Dispatcher) *Logout {
	return &Logout{repo: repo, audit: audit}
}

func (uc *Logout) Execute(ctx context.Context, actor audit.Actor) error {
	if err := uc.repo.Clear(ctx); err != nil {
		return err
	}

	uc.audit.Dispatch(actor.Event(audit.ActionLogout, "user", actor.UserID, nil))
	return nil
}
