package session

import (
	"context"
	"io"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// UploadAvatar converts the upload to a WebP avatar, stores it and points
// the profile at it. Guests cannot upload.
type UploadAvatar struct {
	repo   domain.Repository
	store  media.ObjectStore
	update *UpdateUser
}

func NewUploadAvatar(
	repo domain.Repository,
	store media.ObjectStore,
	audit *audit.Dispatcher,
) *UploadAvatar {
	return &UploadAvatar{
		repo:   repo,
		store:  store,
		update: NewUpdateUser(repo, audit),
	}
}

func (uc *UploadAvatar) Execute(
	ctx context.Context,
	actor audit.Actor,
	image io.Reader,
) (*models.User, error) {

	u, err := uc.repo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil || u.IsGuest {
		return nil, domain.ErrNoActiveUser
	}

	data, err := media.ProcessAvatar(image)
	if err != nil {
		return nil, err
	}

	url, err := uc.store.Put(ctx, media.AvatarKey(actor.DeviceID, u.ID), data, media.ContentTypeWebP)
	if err != nil {
		return nil, err
	}

	updated, ok, err := uc.update.Execute(ctx, actor, domain.Patch{Avatar: &url})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoActiveUser
	}
	return updated, nil
}
