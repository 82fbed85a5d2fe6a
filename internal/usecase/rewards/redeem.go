package rewards

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type RedeemResult struct {
	Reward  models.Reward  `json:"reward"`
	Summary domain.Summary `json:"summary"`
}

// RedeemReward charges the catalog price of a reward against the device's
// points.
type RedeemReward struct {
	repo    domain.Repository
	catalog *catalog.Catalog
	clock   clock.Clock
	audit   *audit.Dispatcher
}

func NewRedeemReward(
	repo domain.Repository,
	cat *catalog.Catalog,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *RedeemReward {
	return &RedeemReward{
		repo:    repo,
		catalog: cat,
		clock:   clk,
		audit:   audit,
	}
}

func (uc *RedeemReward) Execute(
	ctx context.Context,
	actor audit.Actor,
	rewardID string,
) (*RedeemResult, error) {

	reward, ok := uc.catalog.Reward(rewardID)
	if !ok {
		return nil, httperr.ErrBusiness("reward_not_found")
	}

	ledger, err := uc.repo.Redeem(ctx, reward.ID, reward.PointsRequired, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(actor.Event(
		audit.ActionRewardRedeemed,
		"reward",
		reward.ID,
		map[string]int{
			"cost":       reward.PointsRequired,
			"points_now": ledger.Points,
		},
	))

	return &RedeemResult{
		Reward:  reward,
		Summary: domain.Summarize(ledger, uc.catalog.Rewards()),
	}, nil
}

type GetSummary struct {
	repo    domain.Repository
	catalog *catalog.Catalog
}

func NewGetSummary(repo domain.Repository, cat *catalog.Catalog) *GetSummary {
	return &GetSummary{repo: repo, catalog: cat}
}

func (uc *GetSummary) Execute(ctx context.Context) (domain.Summary, error) {
	ledger, err := uc.repo.Load(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(ledger, uc.catalog.Rewards()), nil
}
