package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var (
	ErrMissingCredentials = httperr.ErrBusinessf(
		"missing_credentials", "Please enter both email and password",
	)
	ErrMissingRequiredFields = httperr.ErrBusinessf(
		"missing_required_fields", "Please fill in all required fields",
	)
	ErrNoActiveUser = httperr.ErrBusiness("no_active_user")
)

type Repository interface {
	// Current returns nil when nobody is signed in on the device.
	Current(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	Clear(ctx context.Context) error
	// Update applies fn to the stored user. It reports false and writes
	// nothing when no user is set.
	Update(ctx context.Context, fn func(u *models.User)) (*models.User, bool, error)
}

// Patch holds the profile fields a user may change. Nil fields are left
// untouched.
type Patch struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

func (p Patch) Apply(u *models.User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NewLoginUser signs in with any non-blank credentials. The display name is
// the local part of the email.
func NewLoginUser(email, password string, now time.Time) (*models.User, error) {
	if blank(email) || blank(password) {
		return nil, ErrMissingCredentials
	}

	email = strings.TrimSpace(email)
	name, _, _ := strings.Cut(email, "@")

	return &models.User{
		ID:    userID("user", now),
		Name:  name,
		Email: email,
	}, nil
}

func NewRegisteredUser(name, email, password, phone string, now time.Time) (*models.User, error) {
	if blank(name) || blank(email) || blank(password) {
		return nil, ErrMissingRequiredFields
	}

	return &models.User{
		ID:    userID("user", now),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}, nil
}

func NewGuest(now time.Time) *models.User {
	return &models.User{
		ID:      userID("guest", now),
		Name:    "Guest",
		IsGuest: true,
	}
}

func userID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d", prefix, now.UnixMilli())
}

// Fields lists the names of the fields the patch sets.
func (p Patch) Fields() []string {
	var out []string
	if p.Name != nil {
		out = append(out, "name")
	}
	if p.Email != nil {
		out = append(out, "email")
	}
	if p.Phone != nil {
		out = append(out, "phone")
	}
	if p.Avatar != nil {
		out = append(out, "avatar")
	}
	return out
}
