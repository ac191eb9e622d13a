// Package rotation supplies the fallback minutes allocation used when
// no externally-edited plan is attached to a team.
package rotation

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/ratings"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

const (
	regulationMinutes = 240
	rotationSize      = 10
	minuteFloor       = 12
	benchReceiverCap  = 24

	// Hard ceiling on local-search passes; each pass either improves
	// the team rating or terminates the search.
	maxSearchPasses = 200
)

// selectionScore favors overall rating with a small stamina tilt.
func selectionScore(p types.Player) float64 {
	return p.Overall + 0.15*(p.Stamina-70)
}

// Allocate selects a rotation of up to ten players covering all five
// positions and distributes exactly 240 minutes across them, then
// improves the split with a local search scored by the game-day
// rating strategy. Unselected roster players are emitted with zero
// minutes. A roster with no eligible players yields an empty map.
func Allocate(players []types.Player, log *logrus.Entry) types.MinutesMap {
	eligible := make([]types.Player, 0, len(players))
	for _, p := range players {
		if p.Eligible() {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return types.MinutesMap{}
	}

	selected := selectRotation(eligible)
	minutes := distributeMinutes(selected)
	improved := localSearch(selected, minutes, log)

	for _, p := range players {
		if _, ok := minutes[p.Name]; !ok {
			minutes[p.Name] = 0
		}
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"rotation_size":  len(selected),
			"search_moves":   improved,
			"total_minutes":  minutes.Total(),
		}).Debug("Rotation allocated")
	}
	return minutes
}

// selectRotation greedily covers the five positions with the best
// available scorer for each, then fills remaining slots by selection
// score.
func selectRotation(eligible []types.Player) []types.Player {
	byScore := make([]types.Player, len(eligible))
	copy(byScore, eligible)
	sort.SliceStable(byScore, func(i, j int) bool {
		return selectionScore(byScore[i]) > selectionScore(byScore[j])
	})

	taken := make(map[string]bool, rotationSize)
	selected := make([]types.Player, 0, rotationSize)

	for _, pos := range types.AllPositions {
		for _, p := range byScore {
			if taken[p.Name] || !p.PlaysPosition(pos) {
				continue
			}
			taken[p.Name] = true
			selected = append(selected, p)
			break
		}
	}

	limit := rotationSize
	if len(eligible) < limit {
		limit = len(eligible)
	}
	for _, p := range byScore {
		if len(selected) >= limit {
			break
		}
		if taken[p.Name] {
			continue
		}
		taken[p.Name] = true
		selected = append(selected, p)
	}
	return selected
}

// distributeMinutes gives every selected player the 12-minute floor
// and hands out the remainder one minute at a time, round-robin.
func distributeMinutes(selected []types.Player) types.MinutesMap {
	minutes := make(types.MinutesMap, len(selected))
	for _, p := range selected {
		minutes[p.Name] = minuteFloor
	}
	remaining := regulationMinutes - minuteFloor*len(selected)
	for i := 0; remaining > 0; i++ {
		minutes[selected[i%len(selected)].Name]++
		remaining--
	}
	return minutes
}

// localSearch moves single minutes from donors to receivers as long as
// the move improves the aggregate team rating. Donors must stay above
// the floor; receivers must either be below 24 minutes or rank in the
// top five by selection score. Terminates when a full pass yields no
// improving move.
func localSearch(selected []types.Player, minutes types.MinutesMap, log *logrus.Entry) int {
	strategy := ratings.GameStrategy{}

	topFive := make(map[string]bool, 5)
	ranked := make([]types.Player, len(selected))
	copy(ranked, selected)
	sort.SliceStable(ranked, func(i, j int) bool {
		return selectionScore(ranked[i]) > selectionScore(ranked[j])
	})
	for i := 0; i < len(ranked) && i < 5; i++ {
		topFive[ranked[i].Name] = true
	}

	best := strategy.Rate(selected, minutes).Overall
	moves := 0
	for pass := 0; pass < maxSearchPasses; pass++ {
		improvedThisPass := false
		for _, donor := range selected {
			for _, receiver := range selected {
				if donor.Name == receiver.Name {
					continue
				}
				if minutes[donor.Name] <= minuteFloor {
					continue
				}
				if minutes[receiver.Name] >= benchReceiverCap && !topFive[receiver.Name] {
					continue
				}
				minutes[donor.Name]--
				minutes[receiver.Name]++
				if candidate := strategy.Rate(selected, minutes).Overall; candidate > best {
					best = candidate
					moves++
					improvedThisPass = true
				} else {
					minutes[donor.Name]++
					minutes[receiver.Name]--
				}
			}
		}
		if !improvedThisPass {
			break
		}
	}
	return moves
}
