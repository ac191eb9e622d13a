package simulator

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

const (
	pointScaleLo = 0.85
	pointScaleHi = 1.15

	// When walking makes down, free throws never drop below 60% of
	// attempts.
	freeThrowFloor = 0.6
)

// interiorShare is how much of a player's two-point diet comes from
// close range rather than mid-range.
func interiorShare(pos types.Position) float64 {
	switch pos {
	case types.Center:
		return 0.75
	case types.PowerForward:
		return 0.65
	case types.SmallForward:
		return 0.50
	case types.ShootingGuard:
		return 0.40
	default:
		return 0.45
	}
}

func twoPointPct(p types.Player) float64 {
	share := interiorShare(p.Position)
	skill := share*p.Attributes.CloseShot + (1-share)*p.Attributes.MidRange
	pct := 0.30 + 0.26*skill/99 + 0.06*(p.Attributes.OffenseIQ-70)/30
	return clamp(pct, 0.38, 0.62)
}

func threePointPct(p types.Player) float64 {
	pct := 0.22 + 0.16*(p.Attributes.ThreePoint-threeEligibleMin)/49 +
		0.04*(p.Attributes.OffenseIQ-70)/30
	return clamp(pct, 0.26, 0.44)
}

func freeThrowPct(p types.Player) float64 {
	pct := 0.48 + 0.46*(p.Attributes.FreeThrow-25)/74
	return clamp(pct, 0.50, 0.93)
}

// sampleMakes runs Bernoulli trials over every attempt. Each player
// carries a game form factor (tighter for the top usage trio) and
// each shot type its own luck noise.
func sampleMakes(rng *rand.Rand, active []*playerLine) {
	for _, l := range active {
		formSigma := 0.06
		if l.topUsage {
			formSigma = 0.04
		}
		form := clamp(sampleNormal(rng, 1, formSigma), 0.85, 1.15)

		twoLuck := clamp(sampleNormal(rng, 1, 0.05), 0.88, 1.12)
		threeLuck := clamp(sampleNormal(rng, 1, 0.07), 0.85, 1.15)
		ftLuck := clamp(sampleNormal(rng, 1, 0.03), 0.92, 1.08)

		twoPct := clamp(twoPointPct(l.player)*form*twoLuck, 0.30, 0.68)
		threePct := clamp(threePointPct(l.player)*form*threeLuck, 0.20, 0.50)
		ftPct := clamp(freeThrowPct(l.player)*form*ftLuck, 0.45, 0.95)

		l.twoMade = sampleBinomial(rng, l.twoAttempts(), twoPct)
		l.tpm = sampleBinomial(rng, l.tpa, threePct)
		l.ftm = sampleBinomial(rng, l.fta, ftPct)
	}
}

// reconcilePoints walks the sampled makes toward the game-outcome
// point target: a bounded global rescale first, then single-make bumps
// until the total matches or no legal bump remains. Returns the
// accepted residual (0 on exact convergence).
func reconcilePoints(active []*playerLine, target int) int {
	total := 0
	for _, l := range active {
		total += l.points()
	}
	if total == target {
		return 0
	}

	if total > 0 {
		scale := clamp(float64(target)/float64(total), pointScaleLo, pointScaleHi)
		for _, l := range active {
			l.twoMade = clampInt(roundInt(float64(l.twoMade)*scale), 0, l.twoAttempts())
			l.tpm = clampInt(roundInt(float64(l.tpm)*scale), 0, l.tpa)
			l.ftm = clampInt(roundInt(float64(l.ftm)*scale), 0, l.fta)
		}
	}

	// Top usage players absorb bumps first.
	order := make([]*playerLine, len(active))
	copy(order, active)
	sort.SliceStable(order, func(i, j int) bool { return order[i].usage > order[j].usage })

	for iter := 0; iter < maxReconcileIters; iter++ {
		total = 0
		for _, l := range active {
			total += l.points()
		}
		diff := target - total
		if diff == 0 {
			return 0
		}
		if diff > 0 {
			if !bumpUp(order, diff) {
				break
			}
		} else {
			if !bumpDown(order, -diff) {
				break
			}
		}
	}

	total = 0
	for _, l := range active {
		total += l.points()
	}
	return total - target
}

// bumpUp converts one miss into a make, sized to the deficit when it
// can be: a three for big gaps, a two, then a free throw.
func bumpUp(order []*playerLine, deficit int) bool {
	if deficit >= 3 {
		for _, l := range order {
			if l.tpm < l.tpa {
				l.tpm++
				return true
			}
		}
	}
	if deficit >= 2 {
		for _, l := range order {
			if l.twoMade < l.twoAttempts() {
				l.twoMade++
				return true
			}
		}
	}
	for _, l := range order {
		if l.ftm < l.fta {
			l.ftm++
			return true
		}
	}
	for _, l := range order {
		if l.twoMade < l.twoAttempts() {
			l.twoMade++
			return true
		}
	}
	for _, l := range order {
		if l.tpm < l.tpa {
			l.tpm++
			return true
		}
	}
	return false
}

// bumpDown removes one make: a free throw for a one-point overshoot,
// otherwise a two, then a three, with free throws protected by the
// 60% floor.
func bumpDown(order []*playerLine, excess int) bool {
	ftFloor := func(l *playerLine) int {
		return int(math.Ceil(freeThrowFloor * float64(l.fta)))
	}
	if excess == 1 {
		for _, l := range order {
			if l.ftm > ftFloor(l) {
				l.ftm--
				return true
			}
		}
	}
	for _, l := range order {
		if l.twoMade > 0 {
			l.twoMade--
			return true
		}
	}
	for _, l := range order {
		if l.tpm > 0 {
			l.tpm--
			return true
		}
	}
	for _, l := range order {
		if l.ftm > ftFloor(l) {
			l.ftm--
			return true
		}
	}
	return false
}
