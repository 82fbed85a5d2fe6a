package session

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/rewards"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// GetProfile returns the current user with points and visits read from the
// rewards ledger.
type GetProfile struct {
	users   domain.Repository
	rewards rewards.Repository
}

func NewGetProfile(users domain.Repository, rewardsRepo rewards.Repository) *GetProfile {
	return &GetProfile{users: users, rewards: rewardsRepo}
}

func (uc *GetProfile) Execute(ctx context.Context) (*models.User, error) {
	u, err := uc.users.Current(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoActiveUser
	}

	ledger, err := uc.rewards.Load(ctx)
	if err != nil {
		return nil, err
	}

	u.Points = ledger.Points
	u.TotalVisits = ledger.TotalVisits
	return u, nil
}

// UpdateUser merges the patch into the current user. Without a user it does
// nothing and reports false.
type UpdateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUser(repo domain.Repository, audit *audit.Dispatcher) *UpdateUser {
	return &UpdateUser{repo: repo, audit: audit}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	actor audit.Actor,
	patch domain.Patch,
) (*models.User, bool, error) {

	u, ok, err := uc.repo.Update(ctx, patch.Apply)
	if err != nil || !ok {
		return nil, ok, err
	}

	uc.audit.Dispatch(actor.Event(
		audit.ActionProfileUpdated,
		"user",
		u.ID,
		map[string]string{"fields": strings.Join(patch.Fields(), ",")},
	))
	return u, true, nil
}
