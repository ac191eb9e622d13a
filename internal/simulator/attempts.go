package simulator

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

const (
	// Players shooting below this three-point attribute never attempt
	// a three.
	threeEligibleMin = 50.0

	hotColdChance = 0.35
)

// computeUsage derives each player's allocation weight from offensive
// rating, minutes, and a relative-to-team-mean star adjustment. The
// top three usage players get a chance at a hot/cold swing and tighter
// shooting variance later.
func computeUsage(rng *rand.Rand, active []*playerLine) {
	mean := 0.0
	for _, l := range active {
		mean += l.player.OffRating
	}
	mean /= float64(len(active))
	if mean <= 0 {
		mean = 1
	}

	for _, l := range active {
		off := math.Max(l.player.OffRating, 25)
		usage := float64(l.minutes) * math.Pow(off/75, 2.0)
		usage *= 1 + clamp((off-mean)/100, -0.15, 0.30)
		l.usage = usage
	}

	byUsage := make([]*playerLine, len(active))
	copy(byUsage, active)
	sort.SliceStable(byUsage, func(i, j int) bool { return byUsage[i].usage > byUsage[j].usage })
	for i := 0; i < len(byUsage) && i < 3; i++ {
		byUsage[i].topUsage = true
		if rng.Float64() < hotColdChance {
			byUsage[i].usage *= sampleUniform(rng, 0.80, 1.30)
		}
	}
}

// allocateAttempts hands out team field goal attempts by weighted
// multinomial sampling, then splits out three-point attempts so the
// team total lands exactly on its sampled target.
func allocateAttempts(rng *rand.Rand, active []*playerLine, targets teamTargets) {
	weights := make([]float64, len(active))
	for i, l := range active {
		weights[i] = l.usage
	}
	for i, n := range sampleMultinomial(rng, targets.fga, weights) {
		active[i].fga = n
	}

	allocateThrees(rng, active, targets.tpa)
}

// threePer36 is the volume a shooter of this quality takes per 36
// minutes, independent of how many attempts they were allocated.
func threePer36(p types.Player) float64 {
	if p.Attributes.ThreePoint < threeEligibleMin {
		return 0
	}
	return 1.5 + 5.5*(p.Attributes.ThreePoint-threeEligibleMin)/49.0
}

// positionThreeRate is the share of a player's attempts taken from
// deep, before attribute adjustment.
func positionThreeRate(pos types.Position) float64 {
	switch pos {
	case types.PointGuard:
		return 0.42
	case types.ShootingGuard:
		return 0.45
	case types.SmallForward:
		return 0.40
	case types.PowerForward:
		return 0.28
	default:
		return 0.12
	}
}

func allocateThrees(rng *rand.Rand, active []*playerLine, teamTPA int) {
	per36 := make([]float64, len(active))
	eligible := false
	total := 0
	for i, l := range active {
		if l.player.Attributes.ThreePoint < threeEligibleMin {
			l.tpa = 0
			continue
		}
		eligible = true
		per36[i] = threePer36(l.player) * float64(l.minutes) / 36.0

		shareRate := positionThreeRate(l.player.Position) *
			(0.55 + 0.9*(l.player.Attributes.ThreePoint-threeEligibleMin)/49.0)
		blended := 0.6*shareRate*float64(l.fga) + 0.4*per36[i]
		l.tpa = clampInt(roundInt(blended*sampleUniform(rng, 0.9, 1.1)), 0, l.fga)
		total += l.tpa
	}
	if !eligible {
		return
	}

	// Redistribute by largest deviation from the per-36 target until
	// the team total is hit exactly.
	for iter := 0; total != teamTPA && iter < maxReconcileIters; iter++ {
		if total < teamTPA {
			best := -1
			bestGap := math.Inf(-1)
			for i, l := range active {
				if per36[i] <= 0 || l.tpa >= l.fga {
					continue
				}
				if gap := per36[i] - float64(l.tpa); gap > bestGap {
					bestGap = gap
					best = i
				}
			}
			if best < 0 {
				break
			}
			active[best].tpa++
			total++
		} else {
			best := -1
			bestGap := math.Inf(-1)
			for i, l := range active {
				if l.tpa <= 0 {
					continue
				}
				if gap := float64(l.tpa) - per36[i]; gap > bestGap {
					bestGap = gap
					best = i
				}
			}
			if best < 0 {
				break
			}
			active[best].tpa--
			total--
		}
	}
}

// allocateFreeThrows apportions the team's attempts in pairs, the way
// two-shot fouls arrive, then corrects the odd remainder and enforces
// a minutes-scaled per-player cap.
func allocateFreeThrows(rng *rand.Rand, active []*playerLine, targets teamTargets) {
	weights := make([]float64, len(active))
	for i, l := range active {
		drive := float64(l.twoAttempts()+1) / float64(l.fga+1)
		offFactor := math.Max(l.player.OffRating, 25) / 75
		skill := math.Max(l.player.Attributes.FreeThrow, 25) / 75
		weights[i] = l.usage * drive * offFactor * skill
	}

	pairs := targets.fta / 2
	for i, n := range sampleMultinomial(rng, pairs, weights) {
		active[i].fta = 2 * n
	}
	if targets.fta%2 == 1 {
		best := 0
		for i := range active {
			if weights[i] > weights[best] {
				best = i
			}
		}
		active[best].fta++
	}

	// Cap each player and push overflow onto teammates with room,
	// heaviest weight first.
	capFor := func(l *playerLine) int { return l.minutes/3 + 2 }
	order := make([]int, len(active))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return weights[order[a]] > weights[order[b]] })

	overflow := 0
	for _, l := range active {
		if over := l.fta - capFor(l); over > 0 {
			l.fta -= over
			overflow += over
		}
	}
	for iter := 0; overflow > 0 && iter < maxReconcileIters; iter++ {
		placed := false
		for _, i := range order {
			if overflow == 0 {
				break
			}
			if active[i].fta < capFor(active[i]) {
				active[i].fta++
				overflow--
				placed = true
			}
		}
		if !placed {
			break
		}
	}
}
