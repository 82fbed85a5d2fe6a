package models

import "time"

type Reward struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
	Icon           string `json:"icon"`
	// discount | free-service | upgrade
	Category string `json:"category"`
}

type RedeemedReward struct {
	RewardID   string    `json:"reward_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
	Used       bool      `json:"used"`
}
