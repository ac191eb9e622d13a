package simulator

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/ratings"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

const (
	minutesScaleExp = 0.90

	foulHardCap = 6
	turnoverCap = 8
	// Extra headroom for the high-usage trio, who handle the ball more.
	turnoverCapTopBonus = 3
)

// minutesScale converts minutes into the sub-linear playing-time
// factor shared by the peripheral categories.
func minutesScale(minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return math.Pow(float64(minutes)/36.0, minutesScaleExp)
}

// apportion distributes target units proportional to weights with a
// per-player multiplicative jitter, then force-corrects to the exact
// team total: increments go to the heaviest weight with any remaining,
// decrements to the largest current value.
func apportion(rng *rand.Rand, target int, weights []float64, jitterSigma float64) []int {
	values := make([]int, len(weights))
	if target <= 0 || len(weights) == 0 {
		return values
	}

	sum := 0.0
	jittered := make([]float64, len(weights))
	for i, w := range weights {
		jittered[i] = math.Max(0, w) * clamp(sampleNormal(rng, 1, jitterSigma), 0.4, 1.8)
		sum += jittered[i]
	}

	total := 0
	for i := range values {
		if sum > 0 {
			values[i] = int(float64(target) * jittered[i] / sum)
		}
		total += values[i]
	}

	for iter := 0; total != target && iter < maxReconcileIters; iter++ {
		if total < target {
			best := 0
			for i := range jittered {
				if jittered[i] > jittered[best] {
					best = i
				}
			}
			values[best]++
			total++
		} else {
			best := -1
			for i, v := range values {
				if v > 0 && (best < 0 || v > values[best]) {
					best = i
				}
			}
			if best < 0 {
				break
			}
			values[best]--
			total--
		}
	}
	return values
}

// allocatePeripherals fills rebounds, assists, steals and blocks from
// attribute-driven weights scaled by playing time.
func allocatePeripherals(rng *rand.Rand, active []*playerLine, targets teamTargets) {
	n := len(active)
	rebW := make([]float64, n)
	astW := make([]float64, n)
	stlW := make([]float64, n)
	blkW := make([]float64, n)

	creation := make([]float64, n)
	usageMax := 0.0
	for _, l := range active {
		if l.usage > usageMax {
			usageMax = l.usage
		}
	}
	if usageMax <= 0 {
		usageMax = 1
	}

	for i, l := range active {
		scale := minutesScale(l.minutes)
		rebW[i] = l.player.Attributes.Rebounding * scale
		stlW[i] = l.player.Attributes.Steal * scale
		blkW[i] = l.player.Attributes.Block * scale
		creation[i] = 0.4*l.player.Attributes.BallHandling +
			0.4*l.player.Attributes.OffenseIQ +
			0.2*100*(l.usage/usageMax)
		astW[i] = (0.7*l.player.Attributes.Passing + 0.3*creation[i]) * scale
	}

	// Top three creators get looser assist variance.
	creatorOrder := make([]int, n)
	for i := range creatorOrder {
		creatorOrder[i] = i
	}
	sort.SliceStable(creatorOrder, func(a, b int) bool { return creation[creatorOrder[a]] > creation[creatorOrder[b]] })
	for rank, i := range creatorOrder {
		if rank < 3 {
			astW[i] *= clamp(sampleNormal(rng, 1, 0.20), 0.6, 1.6)
		}
	}

	for i, v := range apportion(rng, targets.rebounds, rebW, 0.25) {
		active[i].rebounds = v
	}
	for i, v := range apportion(rng, targets.assists, astW, 0.22) {
		active[i].assists = v
	}
	for i, v := range apportion(rng, targets.steals, stlW, 0.30) {
		active[i].steals = v
	}
	for i, v := range apportion(rng, targets.blocks, blkW, 0.30) {
		active[i].blocks = v
	}
}

func turnoverPositionFactor(pos types.Position) float64 {
	switch pos {
	case types.PointGuard:
		return 1.35
	case types.ShootingGuard:
		return 1.15
	case types.SmallForward:
		return 1.00
	case types.PowerForward:
		return 0.95
	default:
		return 0.90
	}
}

func foulPositionFactor(pos types.Position) float64 {
	switch pos {
	case types.Center:
		return 1.30
	case types.PowerForward:
		return 1.20
	case types.SmallForward:
		return 1.00
	case types.ShootingGuard:
		return 0.90
	default:
		return 0.85
	}
}

// allocateTurnovers samples per-player Poisson counts from a touches-
// scaled rate, caps them, and forces the team sum onto the sampled
// target.
func allocateTurnovers(rng *rand.Rand, active []*playerLine, targets teamTargets, leagueBase ratings.Baseline) {
	rates := make([]float64, len(active))
	caps := make([]int, len(active))
	total := 0
	for i, l := range active {
		touches := float64(l.fga) + 0.44*float64(l.fta) + 0.30*float64(l.assists)
		rate := turnoverPositionFactor(l.player.Position) *
			(1 + (leagueBase.OffenseIQ-l.player.Attributes.OffenseIQ)/100) *
			(1 + (leagueBase.Overall-l.player.Overall)/120) *
			touches * 0.055
		rates[i] = math.Max(0, rate)

		capValue := turnoverCap
		if l.topUsage {
			capValue += turnoverCapTopBonus
		}
		if touchCap := int(0.4 * touches); touchCap < capValue {
			capValue = touchCap
		}
		caps[i] = capValue

		l.turnovers = clampInt(samplePoisson(rng, rates[i]), 0, caps[i])
		total += l.turnovers
	}

	forceSum(active, rates, caps, total, targets.turnovers, func(l *playerLine) *int { return &l.turnovers })
}

// allocateFouls mirrors turnover allocation with a defensive rate and
// the hard six-foul cap.
func allocateFouls(rng *rand.Rand, active []*playerLine, targets teamTargets, leagueBase ratings.Baseline) {
	rates := make([]float64, len(active))
	caps := make([]int, len(active))
	total := 0
	for i, l := range active {
		rate := foulPositionFactor(l.player.Position) *
			(1 + (leagueBase.DefenseIQ-l.player.Attributes.DefenseIQ)/100) *
			(float64(l.minutes) / 36.0) * 2.3
		rates[i] = math.Max(0, rate)
		caps[i] = foulHardCap

		l.fouls = clampInt(samplePoisson(rng, rates[i]), 0, foulHardCap)
		total += l.fouls
	}

	forceSum(active, rates, caps, total, targets.fouls, func(l *playerLine) *int { return &l.fouls })
}

// forceSum nudges a sampled category onto its team target: increments
// land on the highest-rate player under cap, decrements on the
// lowest-rate player above zero. Gives up at the iteration guard and
// accepts the best achieved sum.
func forceSum(active []*playerLine, rates []float64, caps []int, total, target int, field func(*playerLine) *int) {
	for iter := 0; total != target && iter < maxReconcileIters; iter++ {
		if total < target {
			best := -1
			for i, l := range active {
				if *field(l) >= caps[i] {
					continue
				}
				if best < 0 || rates[i] > rates[best] {
					best = i
				}
			}
			if best < 0 {
				break
			}
			v := field(active[best])
			*v = *v + 1
			total++
		} else {
			best := -1
			for i, l := range active {
				if *field(l) <= 0 {
					continue
				}
				if best < 0 || rates[i] < rates[best] {
					best = i
				}
			}
			if best < 0 {
				break
			}
			v := field(active[best])
			*v = *v - 1
			total--
		}
	}
}
