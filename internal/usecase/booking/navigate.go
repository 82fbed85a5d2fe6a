package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// NextStep advances the flow. From the confirm step it stores the draft
// for payment and returns it.
type NextStep struct {
	repo    domain.Repository
	catalog *catalog.Catalog
}

func NewNextStep(repo domain.Repository, cat *catalog.Catalog) *NextStep {
	return &NextStep{repo: repo, catalog: cat}
}

func (uc *NextStep) Execute(ctx context.Context) (*domain.Flow, *domain.Draft, error) {
	var draft *domain.Draft

	f, err := uc.repo.UpdateFlow(ctx, func(f *domain.Flow) error {
		shop, err := shopOf(uc.catalog, f)
		if err != nil {
			return err
		}

		d, err := f.Next(shop)
		if err != nil {
			return err
		}
		draft = d
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if draft != nil {
		if err := uc.repo.SaveDraft(ctx, draft); err != nil {
			return nil, nil, err
		}
	}
	return f, draft, nil
}

type BackStep struct {
	repo domain.Repository
}

func NewBackStep(repo domain.Repository) *BackStep {
	return &BackStep{repo: repo}
}

// Execute reports exited when the flow was on its first step. The flow is
// then discarded.
func (uc *BackStep) Execute(ctx context.Context) (f *domain.Flow, exited bool, err error) {
	f, err = edit(ctx, uc.repo, func(f *domain.Flow) error {
		return f.Back()
	})

	if errors.Is(err, domain.ErrExitFlow) {
		if err := uc.repo.DeleteDraft(ctx); err != nil {
			return nil, false, err
		}
		if err := uc.repo.DeleteFlow(ctx); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

// edit applies fn to the stored flow and drops any confirmed draft, which
// no longer matches the selection.
func edit(ctx context.Context, repo domain.Repository, fn func(*domain.Flow) error) (*domain.Flow, error) {
	f, err := repo.UpdateFlow(ctx, fn)
	if err != nil {
		return nil, err
	}
	if err := repo.DeleteDraft(ctx); err != nil {
		return nil, err
	}
	return f, nil
}
