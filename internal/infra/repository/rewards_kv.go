package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/rewards"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// RewardsKVRepository keeps points, visits and redemptions under their own
// keys.
type RewardsKVRepository struct {
	st storage.Storage
}

func NewRewardsKVRepository(st storage.Storage) *RewardsKVRepository {
	return &RewardsKVRepository{st: st}
}

func (r *RewardsKVRepository) Load(ctx context.Context) (rewards.Ledger, error) {
	var l rewards.Ledger
	var err error

	if l.Points, err = storage.GetJSON(ctx, r.st, storage.KeyPoints, 0); err != nil {
		return l, err
	}
	if l.TotalVisits, err = storage.GetJSON(ctx, r.st, storage.KeyVisits, 0); err != nil {
		return l, err
	}
	if l.Redeemed, err = storage.GetJSON(ctx, r.st, storage.KeyRedeemed, []models.RedeemedReward{}); err != nil {
		return l, err
	}
	return l, nil
}

func (r *RewardsKVRepository) AddPoints(ctx context.Context, n int) (int, error) {
	return storage.UpdateJSON(ctx, r.st, storage.KeyPoints, 0, func(p *int) error {
		*p += n
		return nil
	})
}

func (r *RewardsKVRepository) IncrementVisits(ctx context.Context) (int, error) {
	return storage.UpdateJSON(ctx, r.st, storage.KeyVisits, 0, func(v *int) error {
		*v++
		return nil
	})
}

// Redeem debits the points and records the redemption in one update of
// both keys, so two concurrent redemptions cannot spend the same points.
func (r *RewardsKVRepository) Redeem(
	ctx context.Context,
	rewardID string,
	cost int,
	at time.Time,
) (rewards.Ledger, error) {

	points, redeemed, err := storage.UpdatePairJSON(ctx, r.st,
		storage.KeyPoints, 0,
		storage.KeyRedeemed, []models.RedeemedReward{},
		func(p *int, list *[]models.RedeemedReward) error {
			left, err := rewards.Debit(*p, cost)
			if err != nil {
				return err
			}

			*p = left
			*list = append(*list, models.RedeemedReward{
				RewardID:   rewardID,
				RedeemedAt: at,
				Used:       false,
			})
			return nil
		},
	)
	if err != nil {
		return rewards.Ledger{}, err
	}

	visits, err := storage.GetJSON(ctx, r.st, storage.KeyVisits, 0)
	if err != nil {
		return rewards.Ledger{}, err
	}

	return rewards.Ledger{
		Points:      points,
		TotalVisits: visits,
		Redeemed:    redeemed,
	}, nil
}
