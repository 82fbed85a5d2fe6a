package rewards

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Ledger is the persisted loyalty state of one device.
type Ledger struct {
	Points      int
	TotalVisits int
	Redeemed    []models.RedeemedReward
}

type Repository interface {
	Load(ctx context.Context) (Ledger, error)

	AddPoints(ctx context.Context, n int) (int, error)
	IncrementVisits(ctx context.Context) (int, error)

	// Redeem debits cost and appends a redemption record, or fails with
	// insufficient_points leaving the ledger untouched.
	Redeem(ctx context.Context, rewardID string, cost int, at time.Time) (Ledger, error)
}

// Debit checks the balance and returns the new point total.
func Debit(points, cost int) (int, error) {
	if cost < 0 {
		return points, httperr.ErrBusiness("invalid_cost")
	}
	if points < cost {
		return points, httperr.ErrBusinessf(
			"insufficient_points",
			"Not enough points. You need %d more points.",
			cost-points,
		)
	}
	return points - cost, nil
}

type Summary struct {
	Points          int                     `json:"points"`
	TotalVisits     int                     `json:"total_visits"`
	Tier            Tier                    `json:"tier"`
	TierGradient    string                  `json:"tier_gradient"`
	NextTierPoints  int                     `json:"next_tier_points"`
	PointsToNext    int                     `json:"points_to_next_tier"`
	ProgressPercent float64                 `json:"progress_percent"`
	Available       int                     `json:"available_rewards"`
	Redeemed        []models.RedeemedReward `json:"redeemed"`
}

// Summarize builds the rewards screen view. Available counts the catalog
// rewards the current balance can pay for.
func Summarize(l Ledger, catalog []models.Reward) Summary {
	tier := CurrentTier(l.Points)
	next := NextTierPoints(l.Points)

	toNext := next - l.Points
	if toNext < 0 {
		toNext = 0
	}

	progress := float64(l.Points*100) / float64(next)
	if progress > 100 {
		progress = 100
	}

	available := 0
	for _, r := range catalog {
		if l.Points >= r.PointsRequired {
			available++
		}
	}

	redeemed := l.Redeemed
	if redeemed == nil {
		redeemed = []models.RedeemedReward{}
	}

	return Summary{
		Points:          l.Points,
		TotalVisits:     l.TotalVisits,
		Tier:            tier,
		TierGradient:    tier.Gradient(),
		NextTierPoints:  next,
		PointsToNext:    toNext,
		ProgressPercent: progress,
		Available:       available,
		Redeemed:        redeemed,
	}
}
