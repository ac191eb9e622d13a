package simulator

import (
	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

const (
	leagueMeanScore = 107.0
	ratingCoef      = 0.9
	overallCoef     = 0.6
	scoreStdDev     = 8.0
	scoreFloor      = 85
	scoreCeiling    = 145

	quarterWeightLo = 0.22
	quarterWeightHi = 0.28

	overtimeMinScore = 8
	overtimeMaxScore = 16
	maxOvertimes     = 50
)

// outcome is one side's final score decomposed into quarters (plus any
// overtime entries appended at the end).
type outcome struct {
	total   int
	periods []int
}

// generateOutcome draws the two final scores from a Gaussian centered
// on the rating differential, splits them into quarters, and appends
// sudden-death overtime periods while the totals are level.
func generateOutcome(rng *rand.Rand, home, away types.TeamRatings) (homeOut, awayOut outcome, overtimes int) {
	homeOut = drawRegulation(rng, home, away)
	awayOut = drawRegulation(rng, away, home)

	for homeOut.total == awayOut.total && overtimes < maxOvertimes {
		homeOT := overtimeMinScore + rng.Intn(overtimeMaxScore-overtimeMinScore+1)
		awayOT := overtimeMinScore + rng.Intn(overtimeMaxScore-overtimeMinScore+1)
		homeOut.periods = append(homeOut.periods, homeOT)
		awayOut.periods = append(awayOut.periods, awayOT)
		homeOut.total += homeOT
		awayOut.total += awayOT
		overtimes++
	}
	if homeOut.total == awayOut.total {
		// Guard tripped; settle it rather than loop forever.
		homeOut.periods[len(homeOut.periods)-1]++
		homeOut.total++
	}
	return homeOut, awayOut, overtimes
}

func drawRegulation(rng *rand.Rand, own, opp types.TeamRatings) outcome {
	mean := leagueMeanScore +
		ratingCoef*(own.Offense-75) -
		ratingCoef*(opp.Defense-75) +
		overallCoef*(own.Overall-opp.Overall)
	total := clampInt(roundInt(sampleNormal(rng, mean, scoreStdDev)), scoreFloor, scoreCeiling)
	return outcome{total: total, periods: splitQuarters(rng, total)}
}

// splitQuarters decomposes a total into four quarters using normalized
// uniform weights; flooring remainder lands on the fourth quarter.
func splitQuarters(rng *rand.Rand, total int) []int {
	weights := make([]float64, 4)
	sum := 0.0
	for i := range weights {
		weights[i] = sampleUniform(rng, quarterWeightLo, quarterWeightHi)
		sum += weights[i]
	}
	quarters := make([]int, 4)
	assigned := 0
	for i := 0; i < 3; i++ {
		quarters[i] = int(float64(total) * weights[i] / sum)
		assigned += quarters[i]
	}
	quarters[3] = total - assigned
	return quarters
}
