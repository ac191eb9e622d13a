package ratings

import (
	"math"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

// Strategy converts a roster and its minutes allocation into team
// ratings. Two implementations exist and serve different call sites:
// GameStrategy for the game simulator and PlayoffStrategy for
// playoff-quality comparisons. They use different scales and formulas
// and are not numerically interchangeable.
type Strategy interface {
	Rate(players []types.Player, minutes types.MinutesMap) types.TeamRatings
}

const (
	regulationMinutes = 240.0
	positionTarget    = 48.0

	// Linear fatigue falloff once a player plays past the minutes
	// their stamina supports, floored at 70% of nominal.
	fatigueSlope      = 0.0075
	fatigueFloor      = 0.7
	staminaPerMinute  = 0.359
	staminaBaseBuffer = 2.46
)

// fatigueFactor returns the multiplicative penalty for a player
// logging mins minutes at the given stamina.
func fatigueFactor(mins, stamina float64) float64 {
	threshold := staminaPerMinute*stamina + staminaBaseBuffer
	excess := math.Max(0, mins-threshold)
	return math.Max(fatigueFloor, 1-fatigueSlope*excess)
}

// coveragePenalty penalizes rosters that leave one of the five
// positions short of 48 combined minutes. Secondary positions count
// at 20% weight. Result is multiplicative and never exceeds 1.
func coveragePenalty(players []types.Player, minutes types.MinutesMap) float64 {
	covered := make(map[types.Position]float64, len(types.AllPositions))
	for _, p := range players {
		mins := minutes[p.Name]
		if mins <= 0 {
			continue
		}
		covered[p.Position] += mins
		if p.SecondaryPosition != "" {
			covered[p.SecondaryPosition] += 0.2 * mins
		}
	}
	shortfall := 0.0
	for _, pos := range types.AllPositions {
		if gap := positionTarget - covered[pos]; gap > 0 {
			shortfall += gap
		}
	}
	penalty := 1 - 0.5*shortfall/regulationMinutes
	return math.Max(0, math.Min(1, penalty))
}

// GameStrategy is the simpler rating formula used by the game
// simulator: minute-weighted attribute sums with fatigue and position
// coverage penalties. Output is rounded to one decimal and clamped to
// [50, 99]; an all-zero-minutes roster yields {0, 0, 0}.
type GameStrategy struct{}

func (GameStrategy) Rate(players []types.Player, minutes types.MinutesMap) types.TeamRatings {
	var off, def, ovr float64
	active := 0
	for _, p := range players {
		mins := minutes[p.Name]
		if mins <= 0 {
			continue
		}
		active++
		weight := mins / regulationMinutes
		fatigue := fatigueFactor(mins, p.Stamina)
		off += weight * p.OffRating * fatigue
		def += weight * p.DefRating * fatigue
		ovr += weight * p.Overall * fatigue
	}
	if active == 0 {
		return types.TeamRatings{}
	}
	coverage := coveragePenalty(players, minutes)
	return types.TeamRatings{
		Overall: clampRating(ovr*coverage, 50, 99),
		Offense: clampRating(off*coverage, 50, 99),
		Defense: clampRating(def*coverage, 50, 99),
	}
}

// clampRating bounds v to [lo, hi] and rounds to one decimal.
func clampRating(v, lo, hi float64) float64 {
	v = math.Max(lo, math.Min(hi, v))
	return math.Round(v*10) / 10
}
