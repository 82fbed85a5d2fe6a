package session

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// Shared
// ======================================================

// signIn stores u as the device's user after the cosmetic delay.
type signIn struct {
	repo  domain.Repository
	clock clock.Clock
	delay time.Duration
	audit *audit.Dispatcher
}

func (s signIn) store(
	ctx context.Context,
	actor audit.Actor,
	action string,
	u *models.User,
) (*models.User, error) {

	if err := s.clock.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	actor.UserID = u.ID
	s.audit.Dispatch(actor.Event(action, "user", u.ID, nil))

	return u, nil
}

// ======================================================
// Login
// ======================================================

type Login struct {
	signIn
}

func NewLogin(
	repo domain.Repository,
	clk clock.Clock,
	delay time.Duration,
	audit *audit.Dispatcher,
) *Login {
	return &Login{signIn{repo: repo, clock: clk, delay: delay, audit: audit}}
}

func (uc *Login) Execute(
	ctx context.Context,
	actor audit.Actor,
	email, password string,
) (*models.User, error) {

	u, err := domain.NewLoginUser(email, password, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.store(ctx, actor, audit.ActionLogin, u)
}

// ======================================================
// Register
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type Register struct {
	signIn
}

func NewRegister(
	repo domain.Repository,
	clk clock.Clock,
	delay time.Duration,
	audit *audit.Dispatcher,
) *Register {
	return &Register{signIn{repo: repo, clock: clk, delay: delay, audit: audit}}
}

func (uc *Register) Execute(
	ctx context.Context,
	actor audit.Actor,
	in RegisterInput,
) (*models.User, error) {

	u, err := domain.NewRegisteredUser(in.Name, in.Email, in.Password, in.Phone, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.store(ctx, actor, audit.ActionRegister, u)
}

// ======================================================
// Guest
// ======================================================

type ContinueAsGuest struct {
	signIn
}

func NewContinueAsGuest(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *ContinueAsGuest {
	return &ContinueAsGuest{signIn{repo: repo, clock: clk, audit: audit}}
}

func (uc *ContinueAsGuest) Execute(ctx context.Context, actor audit.Actor) (*models.User, error) {
	return uc.store(ctx, actor, audit.ActionGuest, domain.NewGuest(uc.clock.Now()))
}
