package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	ErrFlowNotFound  = httperr.ErrBusiness("booking_not_found")
	ErrDraftNotFound = httperr.ErrBusiness("draft_not_found")
)

type Repository interface {
	// GetFlow fails with ErrFlowNotFound when no flow was started.
	GetFlow(ctx context.Context) (*Flow, error)
	SaveFlow(ctx context.Context, f *Flow) error
	// UpdateFlow runs fn on the stored flow and persists it when fn succeeds.
	UpdateFlow(ctx context.Context, fn func(f *Flow) error) (*Flow, error)
	DeleteFlow(ctx context.Context) error

	// GetDraft fails with ErrDraftNotFound when nothing is waiting for
	// payment.
	GetDraft(ctx context.Context) (*Draft, error)
	SaveDraft(ctx context.Context, d *Draft) error
	DeleteDraft(ctx context.Context) error
}
