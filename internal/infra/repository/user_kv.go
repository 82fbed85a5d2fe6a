package repository

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

type UserKVRepository struct {
	st storage.Storage
}

func NewUserKVRepository(st storage.Storage) *UserKVRepository {
	return &UserKVRepository{st: st}
}

func (r *UserKVRepository) Current(ctx context.Context) (*models.User, error) {
	return storage.GetJSON[*models.User](ctx, r.st, storage.KeyUser, nil)
}

func (r *UserKVRepository) Save(ctx context.Context, u *models.User) error {
	return storage.SetJSON(ctx, r.st, storage.KeyUser, u)
}

func (r *UserKVRepository) Clear(ctx context.Context) error {
	return r.st.Delete(ctx, storage.KeyUser)
}

var errNoUser = errors.New("no user")

func (r *UserKVRepository) Update(
	ctx context.Context,
	fn func(u *models.User),
) (*models.User, bool, error) {

	updated, err := storage.UpdateJSON[*models.User](ctx, r.st, storage.KeyUser, nil,
		func(u **models.User) error {
			if *u == nil {
				return errNoUser
			}
			fn(*u)
			return nil
		},
	)
	if errors.Is(err, errNoUser) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return updated, true, nil
}
