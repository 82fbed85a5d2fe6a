package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var ErrShopNotFound = httperr.ErrBusiness("shop_not_found")

// StartBooking opens a fresh flow for a shop, replacing any flow or unpaid
// draft the device had.
type StartBooking struct {
	repo    domain.Repository
	catalog *catalog.Catalog
}

func NewStartBooking(repo domain.Repository, cat *catalog.Catalog) *StartBooking {
	return &StartBooking{repo: repo, catalog: cat}
}

func (uc *StartBooking) Execute(ctx context.Context, shopID string) (*domain.Flow, error) {
	if _, ok := uc.catalog.Shop(shopID); !ok {
		return nil, ErrShopNotFound
	}

	if err := uc.repo.DeleteDraft(ctx); err != nil {
		return nil, err
	}

	f := domain.NewFlow(shopID)
	if err := uc.repo.SaveFlow(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context) (*domain.Flow, error) {
	return uc.repo.GetFlow(ctx)
}

func shopOf(cat *catalog.Catalog, f *domain.Flow) (*models.Barbershop, error) {
	shop, ok := cat.Shop(f.ShopID)
	if !ok {
		return nil, ErrShopNotFound
	}
	return shop, nil
}
