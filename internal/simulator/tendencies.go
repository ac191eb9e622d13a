package simulator

import (
	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/ratings"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

// League-average per-game base counts the tendency multipliers scale.
const (
	basePoints    = 113.8
	baseRebounds  = 44.1
	baseAssists   = 26.5
	baseSteals    = 8.2
	baseBlocks    = 4.9
	baseFGA       = 89.2
	base3PA       = 37.6
	baseFTA       = 21.7
	baseTurnovers = 14.3
	baseFouls     = 20.8
)

// teamTargets are the integer category totals the synthesizer must
// reconcile player rows against.
type teamTargets struct {
	fga       int
	tpa       int
	fta       int
	rebounds  int
	assists   int
	steals    int
	blocks    int
	turnovers int
	fouls     int
}

// tendencies captures a team's bounded deviation multipliers relative
// to the league baseline.
type tendencies struct {
	pace      float64
	fga       float64
	tpa       float64
	fta       float64
	turnovers float64
	fouls     float64
	rebounds  float64
	assists   float64
	steals    float64
	blocks    float64
}

// weightedAttributeMeans minute-weights the tracked attributes across
// the active roster.
func weightedAttributeMeans(players []types.Player, minutes types.MinutesMap) ratings.Baseline {
	var sum ratings.Baseline
	total := 0.0
	for _, p := range players {
		mins := minutes[p.Name]
		if mins <= 0 {
			continue
		}
		total += mins
		sum.ThreePoint += mins * p.Attributes.ThreePoint
		sum.Passing += mins * p.Attributes.Passing
		sum.Rebounding += mins * p.Attributes.Rebounding
		sum.Steal += mins * p.Attributes.Steal
		sum.Block += mins * p.Attributes.Block
		sum.OffenseIQ += mins * p.Attributes.OffenseIQ
		sum.DefenseIQ += mins * p.Attributes.DefenseIQ
		sum.Overall += mins * p.Overall
	}
	if total <= 0 {
		return ratings.NeutralBaseline()
	}
	sum.ThreePoint /= total
	sum.Passing /= total
	sum.Rebounding /= total
	sum.Steal /= total
	sum.Block /= total
	sum.OffenseIQ /= total
	sum.DefenseIQ /= total
	sum.Overall /= total
	return sum
}

// multiplier implements clamp(1 + coef*relative_deviation + noise).
func multiplier(rng *rand.Rand, teamMean, leagueMean, coef, noise, lo, hi float64) float64 {
	if leagueMean <= 0 {
		return 1
	}
	dev := (teamMean - leagueMean) / leagueMean
	return clamp(1+coef*dev+sampleNormal(rng, 0, noise), lo, hi)
}

func computeTendencies(rng *rand.Rand, team ratings.Baseline, league ratings.Baseline) tendencies {
	return tendencies{
		pace:      multiplier(rng, team.OffenseIQ, league.OffenseIQ, 0.25, 0.015, 0.95, 1.05),
		fga:       multiplier(rng, team.Overall, league.Overall, 0.45, 0.04, 0.88, 1.12),
		tpa:       multiplier(rng, team.ThreePoint, league.ThreePoint, 1.20, 0.10, 0.75, 1.35),
		fta:       multiplier(rng, team.OffenseIQ, league.OffenseIQ, 0.80, 0.10, 0.75, 1.35),
		turnovers: multiplier(rng, 2*league.OffenseIQ-team.OffenseIQ, league.OffenseIQ, 0.90, 0.12, 0.75, 1.40),
		fouls:     multiplier(rng, 2*league.DefenseIQ-team.DefenseIQ, league.DefenseIQ, 0.80, 0.12, 0.75, 1.40),
		rebounds:  multiplier(rng, team.Rebounding, league.Rebounding, 0.85, 0.08, 0.85, 1.25),
		assists:   multiplier(rng, team.Passing, league.Passing, 0.90, 0.08, 0.80, 1.25),
		steals:    multiplier(rng, team.Steal, league.Steal, 1.10, 0.14, 0.70, 1.40),
		blocks:    multiplier(rng, team.Block, league.Block, 1.20, 0.16, 0.70, 1.50),
	}
}

// computeTargets scales the league base counts by the tendency
// multipliers. Shot volume additionally tracks the score target and
// any overtime minutes so make rates stay inside their bands.
func computeTargets(t tendencies, pointTarget, overtimes int) teamTargets {
	otScale := (240.0 + 25.0*float64(overtimes)) / 240.0
	volumeScale := clamp(float64(pointTarget)/basePoints, 0.80, 1.25) * otScale

	targets := teamTargets{
		fga:       roundInt(baseFGA * t.fga * t.pace * volumeScale),
		tpa:       roundInt(base3PA * t.tpa * t.pace * volumeScale),
		fta:       roundInt(baseFTA * t.fta * t.pace * volumeScale),
		rebounds:  roundInt(baseRebounds * t.rebounds * t.pace * otScale),
		assists:   roundInt(baseAssists * t.assists * t.pace * otScale),
		steals:    roundInt(baseSteals * t.steals * otScale),
		blocks:    roundInt(baseBlocks * t.blocks * otScale),
		turnovers: roundInt(baseTurnovers * t.turnovers * t.pace * otScale),
		fouls:     roundInt(baseFouls * t.fouls * otScale),
	}
	if targets.tpa > targets.fga {
		targets.tpa = targets.fga
	}
	return targets
}
