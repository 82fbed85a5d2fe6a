package rewards

import "math"

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

const (
	silverThreshold   = 100
	goldThreshold     = 250
	platinumThreshold = 500

	// Returned by NextTierPoints once Platinum is reached.
	ceilingPoints = 1000
)

// Gradient is the card colour used for the tier in the client.
func (t Tier) Gradient() string {
	switch t {
	case TierPlatinum:
		return "from-purple-500 to-pink-500"
	case TierGold:
		return "from-yellow-500 to-orange-500"
	case TierSilver:
		return "from-gray-400 to-gray-500"
	default:
		return "from-orange-600 to-orange-800"
	}
}

// PointsForBooking is one point per 10 currency units, rounded down.
func PointsForBooking(totalPrice float64) int {
	if totalPrice <= 0 {
		return 0
	}
	return int(math.Floor(totalPrice / 10))
}

func CurrentTier(points int) Tier {
	switch {
	case points >= platinumThreshold:
		return TierPlatinum
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

func NextTierPoints(points int) int {
	switch {
	case points < silverThreshold:
		return silverThreshold
	case points < goldThreshold:
		return goldThreshold
	case points < platinumThreshold:
		return platinumThreshold
	default:
		return ceilingPoints
	}
}
