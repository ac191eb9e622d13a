package simulator

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/ratings"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

const (
	// Ceiling for any reconciliation pass. Exhausting it means the
	// target is unsatisfiable; the best achieved value stands.
	maxReconcileIters = 500

	minuteJitter = 1.5
)

// playerLine is the mutable working row for one active player.
type playerLine struct {
	player   types.Player
	minutes  int
	usage    float64
	topUsage bool

	fga int // all field goal attempts, threes included
	tpa int
	fta int

	twoMade int
	tpm     int
	ftm     int

	rebounds  int
	assists   int
	steals    int
	blocks    int
	turnovers int
	fouls     int
}

func (l *playerLine) twoAttempts() int { return l.fga - l.tpa }

func (l *playerLine) points() int { return 2*l.twoMade + 3*l.tpm + l.ftm }

// synthesize produces one reconciled stat line per roster player such
// that the team aggregates land on sampled team targets and total
// points land on pointTarget (best effort). The caller's minutes map
// is never mutated; the reconciled copy is returned alongside rows.
func synthesize(rng *rand.Rand, log *logrus.Entry, team types.Team, minutes types.MinutesMap, pointTarget int, leagueBase ratings.Baseline, overtimes int) ([]types.BoxScoreRow, types.MinutesMap) {
	minutes = minutes.Clone()

	var active []*playerLine
	var inactive []types.Player
	for _, p := range team.Players {
		if minutes[p.Name] > 0 {
			active = append(active, &playerLine{player: p})
		} else {
			inactive = append(inactive, p)
		}
	}
	if len(active) == 0 {
		rows := make([]types.BoxScoreRow, 0, len(inactive))
		for _, p := range inactive {
			rows = append(rows, types.BoxScoreRow{Name: p.Name})
		}
		return rows, minutes
	}

	reconcileMinutes(rng, active, minutes, overtimes)
	for _, l := range active {
		minutes[l.player.Name] = float64(l.minutes)
	}

	teamMeans := weightedAttributeMeans(team.Players, minutes)
	targets := computeTargets(computeTendencies(rng, teamMeans, leagueBase), pointTarget, overtimes)

	computeUsage(rng, active)
	allocateAttempts(rng, active, targets)
	allocateFreeThrows(rng, active, targets)
	sampleMakes(rng, active)
	allocatePeripherals(rng, active, targets)
	allocateTurnovers(rng, active, targets, leagueBase)
	allocateFouls(rng, active, targets, leagueBase)

	residual := reconcilePoints(active, pointTarget)
	if residual != 0 && log != nil {
		log.WithFields(logrus.Fields{
			"team":         team.Name,
			"point_target": pointTarget,
			"residual":     residual,
		}).Debug("Point reconciliation left a residual")
	}

	rows := make([]types.BoxScoreRow, 0, len(team.Players))
	for _, l := range active {
		rows = append(rows, types.BoxScoreRow{
			Name:      l.player.Name,
			Minutes:   l.minutes,
			Points:    l.points(),
			Rebounds:  l.rebounds,
			Assists:   l.assists,
			Steals:    l.steals,
			Blocks:    l.blocks,
			FGM:       l.twoMade + l.tpm,
			FGA:       l.fga,
			TPM:       l.tpm,
			TPA:       l.tpa,
			FTM:       l.ftm,
			FTA:       l.fta,
			Turnovers: l.turnovers,
			Fouls:     l.fouls,
		})
	}
	for _, p := range inactive {
		rows = append(rows, types.BoxScoreRow{Name: p.Name})
	}
	return rows, minutes
}

// reconcileMinutes jitters each active player's minutes and then
// nudges individual players until the side's total is exactly
// 240 + 25 per overtime. Increases go to the highest-weighted player
// with room, decreases to the lowest-weighted above the floor.
func reconcileMinutes(rng *rand.Rand, active []*playerLine, minutes types.MinutesMap, overtimes int) {
	target := 240 + 25*overtimes
	ceiling := 48 + 5*overtimes

	weights := make(map[string]float64, len(active))
	total := 0
	for _, l := range active {
		planned := minutes[l.player.Name]
		l.minutes = clampInt(roundInt(planned+sampleUniform(rng, -minuteJitter, minuteJitter)), 1, ceiling)
		total += l.minutes
		weights[l.player.Name] = math.Pow(math.Max(l.player.OffRating, 1), 1.15) * planned
	}

	byWeight := make([]*playerLine, len(active))
	copy(byWeight, active)
	sort.SliceStable(byWeight, func(i, j int) bool {
		return weights[byWeight[i].player.Name] > weights[byWeight[j].player.Name]
	})

	for iter := 0; total != target && iter < maxReconcileIters; iter++ {
		moved := false
		if total < target {
			for _, l := range byWeight {
				if l.minutes < ceiling {
					l.minutes++
					total++
					moved = true
					break
				}
			}
		} else {
			for i := len(byWeight) - 1; i >= 0; i-- {
				if byWeight[i].minutes > 1 {
					byWeight[i].minutes--
					total--
					moved = true
					break
				}
			}
		}
		if !moved {
			break
		}
	}
}
