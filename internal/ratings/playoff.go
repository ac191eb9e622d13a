package ratings

import (
	"math"
	"sort"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

// PlayoffStrategy is the more elaborate rating formula used for
// playoff and finals-quality comparisons. On top of the fatigue-
// weighted aggregate it adds a star boost for the top two players,
// subtracts a penalty when the roster leaves minutes unfilled, and
// rescales the composite before clamping to [25, 99]. Keep it
// separate from GameStrategy: merging the two would silently change
// game balance.
type PlayoffStrategy struct{}

const (
	starThreshold = 84.0

	starExpOverall = 1.20
	starExpOffense = 1.22
	starExpDefense = 1.21
	starExpOuter   = 0.85

	emptyMinutesExp = 0.85
	emptyMinutesMax = 35.0

	playoffGain   = 1.30
	playoffCenter = 75.0
)

type effectivePlayer struct {
	player  types.Player
	minutes float64
	rating  float64
}

func (PlayoffStrategy) Rate(players []types.Player, minutes types.MinutesMap) types.TeamRatings {
	var actives []effectivePlayer
	var off, def, ovr, used float64
	for _, p := range players {
		mins := minutes[p.Name]
		if mins <= 0 {
			continue
		}
		weight := mins / regulationMinutes
		fatigue := fatigueFactor(mins, p.Stamina)
		off += weight * p.OffRating * fatigue
		def += weight * p.DefRating * fatigue
		ovr += weight * p.Overall * fatigue
		used += mins
		actives = append(actives, effectivePlayer{player: p, minutes: mins, rating: p.Overall * fatigue})
	}
	if len(actives) == 0 {
		return types.TeamRatings{}
	}

	// Top two players by effective rating carry a superlinear boost
	// proportional to how far they sit above the star threshold.
	sort.Slice(actives, func(i, j int) bool { return actives[i].rating > actives[j].rating })
	ovr += starBoost(actives, starExpOverall, func(p types.Player) float64 { return p.Overall })
	off += starBoost(actives, starExpOffense, func(p types.Player) float64 { return p.OffRating })
	def += starBoost(actives, starExpDefense, func(p types.Player) float64 { return p.DefRating })

	// Teams that did not fill 240 combined minutes get docked.
	if used < regulationMinutes {
		gap := (regulationMinutes - used) / regulationMinutes
		penalty := emptyMinutesMax * math.Pow(gap, emptyMinutesExp)
		ovr -= penalty
		off -= penalty
		def -= penalty
	}

	return types.TeamRatings{
		Overall: clampRating(rescale(ovr), 25, 99),
		Offense: clampRating(rescale(off), 25, 99),
		Defense: clampRating(rescale(def), 25, 99),
	}
}

func starBoost(actives []effectivePlayer, exp float64, base func(types.Player) float64) float64 {
	sum := 0.0
	for i := 0; i < len(actives) && i < 2; i++ {
		over := base(actives[i].player) - starThreshold
		if over <= 0 {
			continue
		}
		share := actives[i].minutes / regulationMinutes
		sum += math.Pow(over, exp) * share
	}
	if sum <= 0 {
		return 0
	}
	return math.Pow(sum, starExpOuter)
}

func rescale(v float64) float64 {
	return playoffCenter + playoffGain*(v-playoffCenter)
}
